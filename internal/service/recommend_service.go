package service

import (
	"fmt"

	"go.uber.org/zap"

	"formulab/internal/catalog"
	"formulab/internal/recommend"
	"formulab/internal/store"
)

// PoolSource selects the candidate pool ranked against a query.
type PoolSource string

const (
	// PoolCatalog ranks against the reference-formulation catalog.
	PoolCatalog PoolSource = "catalog"
	// PoolStore ranks against the other requests of the current session.
	PoolStore PoolSource = "store"
)

// SimilarOptions is the caller-facing knob set of one similarity lookup.
type SimilarOptions struct {
	Pool           PoolSource
	TopK           int
	SkinTypeFilter bool
	ClusterFilter  bool
}

// RecommendService assembles candidate pools and delegates ranking to the
// recommender. One parametrized component serves every variant: pool source,
// filters, and top-N are all arguments, not copies of the routine.
type RecommendService struct {
	store       *store.RequestStore
	catalog     *catalog.Snapshot
	recommender *recommend.Recommender
	defaultTopK int
	clusters    int
	logger      *zap.Logger
}

func NewRecommendService(
	requests *store.RequestStore,
	snapshot *catalog.Snapshot,
	recommender *recommend.Recommender,
	defaultTopK int,
	clusters int,
	logger *zap.Logger,
) *RecommendService {
	return &RecommendService{
		store:       requests,
		catalog:     snapshot,
		recommender: recommender,
		defaultTopK: defaultTopK,
		clusters:    clusters,
		logger:      logger,
	}
}

// SimilarTo ranks the chosen pool against the stored request with the given
// ID. A degenerate pool resolves to an empty result; an over-restricting
// filter resolves to the unfiltered pool with FallbackApplied set.
func (s *RecommendService) SimilarTo(id string, opts SimilarOptions) (recommend.Result, error) {
	req, err := s.store.Get(id)
	if err != nil {
		return recommend.Result{}, err
	}

	pool, err := s.buildPool(opts.Pool)
	if err != nil {
		return recommend.Result{}, err
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = s.defaultTopK
	}

	recOpts := recommend.Options{
		TopK:          topK,
		ClusterFilter: opts.ClusterFilter,
		Clusters:      s.clusters,
	}
	if opts.SkinTypeFilter {
		recOpts.FilterAttribute = recommend.AttributeSkinType
	}

	result := s.recommender.Recommend(
		recommend.Query{ID: req.ID, Fields: req.Fields},
		pool,
		recOpts,
	)

	s.logger.Info("Similarity lookup completed",
		zap.String("id", id),
		zap.String("pool", string(poolOrDefault(opts.Pool))),
		zap.Int("matches", len(result.Matches)),
		zap.Bool("fallback", result.FallbackApplied),
	)
	return result, nil
}

func (s *RecommendService) buildPool(source PoolSource) ([]recommend.Candidate, error) {
	switch poolOrDefault(source) {
	case PoolCatalog:
		views := s.catalog.Candidates()
		pool := make([]recommend.Candidate, len(views))
		for i, v := range views {
			pool[i] = recommend.Candidate{ID: v.ID, Name: v.Name, Fields: v.Fields}
		}
		return pool, nil
	case PoolStore:
		recs := s.store.List()
		pool := make([]recommend.Candidate, len(recs))
		for i, r := range recs {
			pool[i] = recommend.Candidate{ID: r.ID, Name: r.Fields.ProductName, Fields: r.Fields}
		}
		return pool, nil
	default:
		return nil, fmt.Errorf("unknown candidate pool %q", source)
	}
}

func poolOrDefault(source PoolSource) PoolSource {
	if source == "" {
		return PoolCatalog
	}
	return source
}
