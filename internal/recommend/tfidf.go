package recommend

import "math"

// vectorizer is a term-frequency/inverse-document-frequency vector space. The
// vocabulary is derived fresh from the documents of a single Recommend call;
// nothing is cached across calls.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitVectorizer builds the vocabulary and IDF weights over the given
// documents. IDF uses the smoothed form ln((1+N)/(1+df)) + 1, so terms
// appearing in every document still carry weight and identical texts score a
// cosine of 1 against each other.
func fitVectorizer(docs []string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocab))
	for tok, idx := range v.vocab {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}
	return v
}

// transform maps a text onto an L2-normalized TF-IDF vector in the fitted
// space. Terms outside the vocabulary are ignored. An empty or entirely
// out-of-vocabulary text yields the zero vector.
func (v *vectorizer) transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range tokenize(text) {
		idx, ok := v.vocab[tok]
		if !ok {
			continue
		}
		vec[idx] += v.idf[idx]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// cosine computes the cosine similarity of two vectors from the same space.
// Inputs from transform are already normalized, so this reduces to a dot
// product, clamped into [0,1] against float drift.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
