package dto

import "formulab/internal/recommend"

type MatchResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SimilarResponse is a ranked similarity lookup. FallbackApplied tells the
// caller that a requested pre-filter was abandoned for the unfiltered pool.
type SimilarResponse struct {
	Matches         []MatchResponse `json:"matches"`
	FallbackApplied bool            `json:"fallback_applied"`
}

func NewSimilarResponse(res recommend.Result) SimilarResponse {
	out := SimilarResponse{
		Matches:         make([]MatchResponse, len(res.Matches)),
		FallbackApplied: res.FallbackApplied,
	}
	for i, m := range res.Matches {
		out.Matches[i] = MatchResponse{ID: m.ID, Name: m.Name, Score: m.Score}
	}
	return out
}
