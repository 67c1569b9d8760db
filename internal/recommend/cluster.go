package recommend

import (
	"fmt"

	"formulab/internal/models"
)

const (
	defaultClusters  = 3
	maxClusterRounds = 20
)

// featureVec is the categorical view of a record used by the cluster filter.
type featureVec struct {
	cats   [5]string       // product type, texture, fragrance, vegan, skin type
	claims map[string]bool // functional-claim set
}

func features(f models.Fields) featureVec {
	fv := featureVec{
		cats: [5]string{f.ProductType, f.Texture, f.Fragrance, f.Vegan, f.SkinType},
	}
	fv.claims = make(map[string]bool, len(f.Claims))
	for _, c := range f.Claims {
		fv.claims[c] = true
	}
	return fv
}

// distance counts categorical mismatches plus the symmetric difference of the
// claim sets.
func distance(a, b featureVec) int {
	d := 0
	for i := range a.cats {
		if a.cats[i] != b.cats[i] {
			d++
		}
	}
	for c := range a.claims {
		if !b.claims[c] {
			d++
		}
	}
	for c := range b.claims {
		if !a.claims[c] {
			d++
		}
	}
	return d
}

// filterByCluster partitions the pool into k clusters by a deterministic
// k-modes pass over the categorical attributes and keeps the candidates
// sharing the query's cluster. The query itself is not part of the partition;
// it is assigned to its nearest mode afterwards.
func filterByCluster(query Query, pool []Candidate, k int) ([]Candidate, error) {
	if k <= 0 {
		k = defaultClusters
	}
	if len(pool) < 2 {
		return nil, fmt.Errorf("cluster filter needs at least 2 candidates, got %d", len(pool))
	}
	if k > len(pool) {
		k = len(pool)
	}

	vecs := make([]featureVec, len(pool))
	for i, cand := range pool {
		vecs[i] = features(cand.Fields)
	}

	// Initial modes: the first k pairwise-distinct feature vectors in pool
	// order; pad with duplicates if the pool has fewer distinct vectors.
	modes := make([]featureVec, 0, k)
	for _, fv := range vecs {
		if len(modes) == k {
			break
		}
		distinct := true
		for _, m := range modes {
			if distance(m, fv) == 0 {
				distinct = false
				break
			}
		}
		if distinct {
			modes = append(modes, fv)
		}
	}
	for len(modes) < k {
		modes = append(modes, vecs[len(modes)%len(vecs)])
	}

	assign := make([]int, len(vecs))
	for round := 0; round < maxClusterRounds; round++ {
		changed := false
		for i, fv := range vecs {
			best := nearestMode(fv, modes)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if round > 0 && !changed {
			break
		}
		modes = recomputeModes(vecs, assign, modes)
	}

	queryCluster := nearestMode(features(query.Fields), modes)

	var out []Candidate
	for i, cand := range pool {
		if assign[i] == queryCluster {
			out = append(out, cand)
		}
	}
	return out, nil
}

// nearestMode returns the index of the closest mode; ties go to the lowest
// index so assignment is deterministic.
func nearestMode(fv featureVec, modes []featureVec) int {
	best, bestDist := 0, -1
	for i, m := range modes {
		d := distance(fv, m)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func recomputeModes(vecs []featureVec, assign []int, old []featureVec) []featureVec {
	modes := make([]featureVec, len(old))
	for c := range old {
		var members []featureVec
		for i, a := range assign {
			if a == c {
				members = append(members, vecs[i])
			}
		}
		if len(members) == 0 {
			modes[c] = old[c]
			continue
		}
		modes[c] = modeOf(members)
	}
	return modes
}

// modeOf builds the per-attribute majority vector of a cluster. A claim
// survives into the mode when at least half the members carry it. Ties on
// categorical values resolve to the value seen first among members.
func modeOf(members []featureVec) featureVec {
	var mode featureVec
	for slot := 0; slot < len(mode.cats); slot++ {
		counts := make(map[string]int)
		order := []string{}
		for _, m := range members {
			v := m.cats[slot]
			if counts[v] == 0 {
				order = append(order, v)
			}
			counts[v]++
		}
		best, bestN := "", -1
		for _, v := range order {
			if counts[v] > bestN {
				best, bestN = v, counts[v]
			}
		}
		mode.cats[slot] = best
	}

	claimCounts := make(map[string]int)
	for _, m := range members {
		for c := range m.claims {
			claimCounts[c]++
		}
	}
	mode.claims = make(map[string]bool)
	for c, n := range claimCounts {
		if n*2 >= len(members) {
			mode.claims[c] = true
		}
	}
	return mode
}
