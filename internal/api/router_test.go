package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"formulab/internal/api/handlers"
	"formulab/internal/catalog"
	"formulab/internal/dto"
	"formulab/internal/models"
	"formulab/internal/recommend"
	"formulab/internal/report"
	"formulab/internal/service"
	"formulab/internal/store"
	"formulab/internal/transport"
)

func testApp(t *testing.T) *testServer {
	t.Helper()

	requests := store.NewWithNow(func() time.Time {
		return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	})
	snapshot := catalog.NewSnapshot([]models.CatalogEntry{
		{ID: "X", Fields: models.Fields{ProductName: "처방X", Feel: "촉촉하고 산뜻함"}},
		{ID: "Y", Fields: models.Fields{ProductName: "처방Y", Feel: "매트하고 건조한 파우더"}},
	})

	log := zap.NewNop()
	requestService := service.NewRequestService(requests, log)
	recommendService := service.NewRecommendService(
		requests, snapshot, recommend.New(log), 3, 3, log,
	)
	reportService := service.NewReportService(
		requestService, recommendService,
		report.NewRenderer(""),
		transport.NewSheetAppender("", 0, log),
		transport.NewMailer(transport.SMTPConfig{}, log),
		log,
	)

	app := SetupRouter(
		handlers.NewRequestHandler(requestService, recommendService, reportService, log),
		handlers.NewUploadHandler(log),
	)
	return &testServer{app: app}
}

// testServer wraps app.Test with the request plumbing the tests share.
type testServer struct {
	app *fiber.App
}

func (f *testServer) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.app.Test(req, 5000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestCreateGetAndUpdateRequest(t *testing.T) {
	app := testApp(t)

	resp, body := app.do(t, http.MethodPost, "/api/v1/requests", dto.CreateRequestBody{
		ProductName: "테스트워시",
		Texture:     "젤",
		Claims:      []string{"보습"},
		Feel:        "촉촉하고 산뜻함",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "2024-01-01-001", created.ID)

	resp, body = app.do(t, http.MethodGet, "/api/v1/requests/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	resp, body = app.do(t, http.MethodPatch, "/api/v1/requests/"+created.ID,
		map[string]any{"feel": "산뜻하고 가벼움"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "산뜻하고 가벼움", updated.Fields.Feel)
	assert.Equal(t, "테스트워시", updated.Fields.ProductName)
}

func TestGetUnknownRequestReturns404(t *testing.T) {
	app := testApp(t)

	resp, _ := app.do(t, http.MethodGet, "/api/v1/requests/2024-01-01-999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = app.do(t, http.MethodPatch, "/api/v1/requests/2024-01-01-999",
		map[string]any{"feel": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSimilarEndpointRanksCatalog(t *testing.T) {
	app := testApp(t)

	_, body := app.do(t, http.MethodPost, "/api/v1/requests", dto.CreateRequestBody{
		ProductName: "테스트워시",
		Feel:        "촉촉하고 산뜻함",
	})
	var created dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := app.do(t, http.MethodGet, "/api/v1/requests/"+created.ID+"/similar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var similar dto.SimilarResponse
	require.NoError(t, json.Unmarshal(body, &similar))
	require.Len(t, similar.Matches, 2)
	assert.Equal(t, "X", similar.Matches[0].ID)
	assert.Greater(t, similar.Matches[0].Score, similar.Matches[1].Score)
}

func TestReportEndpointReturnsMetadataAndOutcomes(t *testing.T) {
	app := testApp(t)

	_, body := app.do(t, http.MethodPost, "/api/v1/requests", dto.CreateRequestBody{
		ProductName: "테스트워시",
		Feel:        "촉촉하고 산뜻함",
	})
	var created dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := app.do(t, http.MethodPost, "/api/v1/requests/"+created.ID+"/report",
		dto.GenerateReportBody{Format: "txt", IncludeSimilar: true, AppendToSheet: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep dto.ReportResponse
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.NotZero(t, rep.Document.SizeBytes)
	assert.Len(t, rep.Similar.Matches, 2)

	// the sheet webhook is unconfigured: surfaced as a failed outcome, not an error
	require.Len(t, rep.Exports, 1)
	assert.False(t, rep.Exports[0].Success)
	assert.NotEmpty(t, rep.Exports[0].Message)
}

func TestDownloadReportStreamsDocument(t *testing.T) {
	app := testApp(t)

	_, body := app.do(t, http.MethodPost, "/api/v1/requests", dto.CreateRequestBody{
		ProductName: "테스트워시",
	})
	var created dto.RequestResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := app.do(t, http.MethodGet,
		"/api/v1/requests/"+created.ID+"/report/download?format=txt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, string(body), "접수ID: "+created.ID)
}

func TestAutofillUploadMapsCSV(t *testing.T) {
	app := testApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bulk.csv")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("제품명,제형\n테스트워시,젤\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/autofill", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.app.Test(req, 5000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AutofillResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []string{"product_name", "texture"}, out.MappedFields)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "테스트워시", out.Rows[0].ProductName)
}

func TestHealthz(t *testing.T) {
	app := testApp(t)

	resp, body := app.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
