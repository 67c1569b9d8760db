package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"formulab/internal/models"
)

const defaultSheetTimeout = 10 * time.Second

// SheetAppender posts flattened records to a spreadsheet webhook. The call is
// a single blocking POST with a timeout; failures are returned as-is and
// never retried, the caller decides how to surface them.
type SheetAppender struct {
	webhookURL string
	client     *http.Client
	logger     *zap.Logger
}

func NewSheetAppender(webhookURL string, timeout time.Duration, logger *zap.Logger) *SheetAppender {
	if timeout <= 0 {
		timeout = defaultSheetTimeout
	}
	return &SheetAppender{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Configured reports whether a webhook URL was supplied.
func (s *SheetAppender) Configured() bool {
	return s.webhookURL != ""
}

// Append serializes the request in its flat key order and posts it as JSON.
func (s *SheetAppender) Append(ctx context.Context, req models.Request) error {
	if !s.Configured() {
		return fmt.Errorf("sheet webhook not configured")
	}

	body, err := json.Marshal(models.Flatten(req))
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post to sheet webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}

	s.logger.Info("Record appended to sheet", zap.String("id", req.ID))
	return nil
}
