package recommend

import (
	"sort"

	"go.uber.org/zap"

	"formulab/internal/models"
)

// DefaultTopK is the number of matches returned when the caller does not ask
// for a specific count.
const DefaultTopK = 3

// Attribute names a single categorical field usable as an exact-match
// pre-filter.
type Attribute string

const (
	AttributeProductType Attribute = "product_type"
	AttributeTexture     Attribute = "texture"
	AttributeFragrance   Attribute = "fragrance"
	AttributeVegan       Attribute = "vegan"
	AttributeSkinType    Attribute = "skin_type"
)

func attributeValue(f models.Fields, attr Attribute) string {
	switch attr {
	case AttributeProductType:
		return f.ProductType
	case AttributeTexture:
		return f.Texture
	case AttributeFragrance:
		return f.Fragrance
	case AttributeVegan:
		return f.Vegan
	case AttributeSkinType:
		return f.SkinType
	}
	return ""
}

// Candidate is one entry of the candidate pool. Pool order is meaningful: it
// is the tie-break order for equal scores.
type Candidate struct {
	ID     string
	Name   string
	Fields models.Fields
}

// Query is the record the pool is ranked against. If its ID is present in the
// pool, that candidate is excluded from the returned ranking.
type Query struct {
	ID     string
	Fields models.Fields
}

// Match is a ranked candidate.
type Match struct {
	ID    string
	Name  string
	Score float64
}

// Result is the outcome of one Recommend call. FallbackApplied reports that a
// requested pre-filter shrank the pool below a usable size and ranking
// reverted to the unfiltered pool.
type Result struct {
	Matches         []Match
	FallbackApplied bool
}

// Options controls pool filtering and truncation.
type Options struct {
	// TopK caps the number of returned matches; <=0 means DefaultTopK.
	TopK int
	// FilterAttribute, when non-empty, keeps only candidates whose value for
	// the attribute exactly matches the query's.
	FilterAttribute Attribute
	// ClusterFilter keeps only candidates sharing the query's k-modes
	// cluster.
	ClusterFilter bool
	// Clusters is the k for the cluster filter; <=0 means defaultClusters.
	Clusters int
}

// Recommender ranks candidate formulations against a query by TF-IDF cosine
// similarity over projected texts. It never fails: degenerate input resolves
// to an empty Result and filter problems resolve to the unfiltered pool.
type Recommender struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Recommender {
	return &Recommender{logger: logger}
}

// Recommend returns the top-N candidates most similar to the query.
func (r *Recommender) Recommend(query Query, pool []Candidate, opts Options) Result {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	working := pool
	fallback := false

	if opts.FilterAttribute != "" {
		filtered := filterByAttribute(query, working, opts.FilterAttribute)
		if countUsable(filtered) < 2 {
			r.logger.Warn("Attribute filter over-restricted pool, falling back",
				zap.String("attribute", string(opts.FilterAttribute)),
				zap.Int("filtered", len(filtered)),
				zap.Int("pool", len(working)),
			)
			fallback = true
		} else {
			working = filtered
		}
	}

	if opts.ClusterFilter {
		filtered, err := filterByCluster(query, working, opts.Clusters)
		if err != nil {
			r.logger.Warn("Cluster filter failed, falling back", zap.Error(err))
			fallback = true
		} else if countUsable(filtered) < 2 {
			r.logger.Warn("Cluster filter over-restricted pool, falling back",
				zap.Int("filtered", len(filtered)),
				zap.Int("pool", len(working)),
			)
			fallback = true
		} else {
			working = filtered
		}
	}

	if countUsable(working) < 2 {
		return Result{FallbackApplied: fallback}
	}

	queryText := ProjectFields(query.Fields)

	docs := make([]string, 0, len(working)+1)
	docs = append(docs, queryText)
	texts := make([]string, len(working))
	for i, cand := range working {
		texts[i] = ProjectFields(cand.Fields)
		docs = append(docs, texts[i])
	}

	vec := fitVectorizer(docs)
	queryVec := vec.transform(queryText)

	matches := make([]Match, 0, len(working))
	for i, cand := range working {
		if query.ID != "" && cand.ID == query.ID {
			continue
		}
		matches = append(matches, Match{
			ID:    cand.ID,
			Name:  cand.Name,
			Score: cosine(queryVec, vec.transform(texts[i])),
		})
	}

	// Stable sort keeps pool order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return Result{Matches: matches, FallbackApplied: fallback}
}

func filterByAttribute(query Query, pool []Candidate, attr Attribute) []Candidate {
	want := attributeValue(query.Fields, attr)
	var out []Candidate
	for _, cand := range pool {
		if attributeValue(cand.Fields, attr) == want {
			out = append(out, cand)
		}
	}
	return out
}

func countUsable(pool []Candidate) int {
	n := 0
	for _, cand := range pool {
		if usableText(ProjectFields(cand.Fields)) {
			n++
		}
	}
	return n
}
