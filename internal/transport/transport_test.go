package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"formulab/internal/models"
	"formulab/internal/report"
)

func sampleRequest() models.Request {
	return models.Request{
		ID:        "2024-01-01-001",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Fields: models.Fields{
			ProductName: "테스트워시",
			Claims:      []string{"보습", "진정"},
		},
	}
}

func TestSheetAppendPostsFlattenedRecord(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSheetAppender(srv.URL, time.Second, zap.NewNop())
	require.NoError(t, s.Append(context.Background(), sampleRequest()))

	assert.Equal(t, "2024-01-01-001", got["접수ID"])
	assert.Equal(t, "테스트워시", got["제품명"])
	assert.Equal(t, "보습, 진정", got["기능성"])
}

func TestSheetAppendSurfacesHTTPFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewSheetAppender(srv.URL, time.Second, zap.NewNop())
	err := s.Append(context.Background(), sampleRequest())
	assert.ErrorContains(t, err, "502")
}

func TestSheetAppendUnconfigured(t *testing.T) {
	s := NewSheetAppender("", 0, zap.NewNop())
	assert.False(t, s.Configured())
	assert.Error(t, s.Append(context.Background(), sampleRequest()))
}

func TestMailerTruncatesToTwoRecipients(t *testing.T) {
	m := &Mailer{
		cfg:    SMTPConfig{Host: "smtp.example.com", From: "lab@example.com"},
		logger: zap.NewNop(),
	}

	var sent *gomail.Message
	m.send = func(msg *gomail.Message) error {
		sent = msg
		return nil
	}

	doc := report.Document{
		Bytes:       []byte("보고서 본문"),
		ContentType: "text/plain; charset=utf-8",
		Filename:    "report.txt",
	}
	err := m.SendReport([]string{"a@b.kr", "c@d.kr", "e@f.kr"}, "유사 처방 추천 보고서", "첨부 확인", doc)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Len(t, sent.GetHeader("To"), 2)
}

func TestMailerRequiresConfigurationAndRecipients(t *testing.T) {
	unconfigured := &Mailer{logger: zap.NewNop()}
	assert.False(t, unconfigured.Configured())
	assert.Error(t, unconfigured.SendReport([]string{"a@b.kr"}, "s", "b", report.Document{}))

	m := &Mailer{
		cfg:    SMTPConfig{Host: "smtp.example.com", From: "lab@example.com"},
		send:   func(*gomail.Message) error { return nil },
		logger: zap.NewNop(),
	}
	assert.Error(t, m.SendReport(nil, "s", "b", report.Document{}))
}
