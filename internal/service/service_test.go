package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"formulab/internal/catalog"
	"formulab/internal/models"
	"formulab/internal/recommend"
	"formulab/internal/report"
	"formulab/internal/store"
	"formulab/internal/transport"
)

func testStore() *store.RequestStore {
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return store.NewWithNow(func() time.Time { return day })
}

func testCatalog() *catalog.Snapshot {
	return catalog.NewSnapshot([]models.CatalogEntry{
		{ID: "X", Fields: models.Fields{ProductName: "처방X", Feel: "촉촉하고 산뜻함"}},
		{ID: "Y", Fields: models.Fields{ProductName: "처방Y", Feel: "매트하고 건조한 파우더"}},
	})
}

func testRecommendService(s *store.RequestStore) *RecommendService {
	return NewRecommendService(s, testCatalog(), recommend.New(zap.NewNop()), 3, 3, zap.NewNop())
}

func TestRequestServiceCreateAndGet(t *testing.T) {
	svc := NewRequestService(testStore(), zap.NewNop())

	rec, err := svc.Create(models.Fields{
		ProductName: "테스트워시",
		Texture:     "젤",
		Claims:      []string{"보습"},
		Feel:        "촉촉하고 산뜻함",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01-001", rec.ID)

	got, err := svc.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRequestServiceCreateSanitizesInvalidUTF8(t *testing.T) {
	svc := NewRequestService(testStore(), zap.NewNop())

	rec, err := svc.Create(models.Fields{ProductName: "테스트\xff워시"})
	require.NoError(t, err)
	assert.Equal(t, "테스트워시", rec.Fields.ProductName)
}

func TestSimilarToAgainstCatalog(t *testing.T) {
	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	recSvc := testRecommendService(s)

	rec, err := reqSvc.Create(models.Fields{
		ProductName: "테스트워시",
		Texture:     "젤",
		Claims:      []string{"보습"},
		Feel:        "촉촉하고 산뜻함",
	})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01-001", rec.ID)

	res, err := recSvc.SimilarTo(rec.ID, SimilarOptions{})
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "X", res.Matches[0].ID)
	assert.Greater(t, res.Matches[0].Score, res.Matches[1].Score)
}

func TestSimilarToAgainstStoreExcludesSelf(t *testing.T) {
	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	recSvc := testRecommendService(s)

	first, err := reqSvc.Create(models.Fields{ProductName: "워시A", Feel: "촉촉하고 산뜻함"})
	require.NoError(t, err)
	_, err = reqSvc.Create(models.Fields{ProductName: "워시B", Feel: "촉촉하고 부드러움"})
	require.NoError(t, err)
	_, err = reqSvc.Create(models.Fields{ProductName: "크림C", Feel: "무겁고 리치함"})
	require.NoError(t, err)

	res, err := recSvc.SimilarTo(first.ID, SimilarOptions{Pool: PoolStore, TopK: 10})
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	for _, m := range res.Matches {
		assert.NotEqual(t, first.ID, m.ID)
	}
}

func TestSimilarToUnknownID(t *testing.T) {
	recSvc := testRecommendService(testStore())

	_, err := recSvc.SimilarTo("2024-01-01-999", SimilarOptions{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSimilarToUnknownPool(t *testing.T) {
	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	recSvc := testRecommendService(s)

	rec, err := reqSvc.Create(models.Fields{Feel: "촉촉함"})
	require.NoError(t, err)

	_, err = recSvc.SimilarTo(rec.ID, SimilarOptions{Pool: "clipboard"})
	assert.Error(t, err)
}

func newReportService(s *store.RequestStore, webhookURL string) *ReportService {
	reqSvc := NewRequestService(s, zap.NewNop())
	return NewReportService(
		reqSvc,
		testRecommendService(s),
		report.NewRenderer(""),
		transport.NewSheetAppender(webhookURL, time.Second, zap.NewNop()),
		transport.NewMailer(transport.SMTPConfig{}, zap.NewNop()),
		zap.NewNop(),
	)
}

func TestGenerateReportWithSimilarSection(t *testing.T) {
	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	rec, err := reqSvc.Create(models.Fields{ProductName: "테스트워시", Feel: "촉촉하고 산뜻함"})
	require.NoError(t, err)

	svc := newReportService(s, "")
	res, err := svc.Generate(context.Background(), rec.ID, ReportOptions{
		Format:         report.FormatText,
		IncludeSimilar: true,
	})
	require.NoError(t, err)

	assert.Contains(t, string(res.Document.Bytes), "처방X")
	assert.Len(t, res.Similar.Matches, 2)
	assert.Empty(t, res.Exports)
}

func TestGenerateReportSurfacesExportFailuresWithoutFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	rec, err := reqSvc.Create(models.Fields{
		ProductName:   "테스트워시",
		ContactEmails: []string{"dev@acme.kr"},
	})
	require.NoError(t, err)

	svc := newReportService(s, srv.URL)
	res, err := svc.Generate(context.Background(), rec.ID, ReportOptions{
		AppendToSheet: true,
		SendMail:      true, // mailer unconfigured, must surface as outcome
	})
	require.NoError(t, err)

	require.Len(t, res.Exports, 2)
	for _, outcome := range res.Exports {
		assert.False(t, outcome.Success)
		assert.NotEmpty(t, outcome.Message)
	}

	// the record survives failed exports
	_, err = reqSvc.Get(rec.ID)
	assert.NoError(t, err)
}

func TestGenerateReportAppendsToSheet(t *testing.T) {
	var received bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := testStore()
	reqSvc := NewRequestService(s, zap.NewNop())
	rec, err := reqSvc.Create(models.Fields{ProductName: "테스트워시"})
	require.NoError(t, err)

	svc := newReportService(s, srv.URL)
	res, err := svc.Generate(context.Background(), rec.ID, ReportOptions{AppendToSheet: true})
	require.NoError(t, err)

	assert.True(t, received)
	require.Len(t, res.Exports, 1)
	assert.True(t, res.Exports[0].Success)
}
