package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"formulab/internal/recommend"
	"formulab/internal/report"
	"formulab/internal/transport"
)

const mailSubject = "유사 처방 추천 보고서"
const mailBody = "첨부된 보고서를 확인해주세요."

// ExportOutcome is the per-transport result attached to a report response.
// Transport failures are warnings, never request failures: the record stays
// in the store either way.
type ExportOutcome struct {
	Target  string `json:"target"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ReportOptions selects the rendered format and the exports to attempt.
type ReportOptions struct {
	Format         report.Format
	IncludeSimilar bool
	Similar        SimilarOptions
	AppendToSheet  bool
	SendMail       bool
}

// ReportResult bundles the rendered document with the ranking it embeds and
// the outcomes of any requested exports.
type ReportResult struct {
	Document report.Document
	Similar  recommend.Result
	Exports  []ExportOutcome
}

// ReportService renders reports and hands them to the external transports.
type ReportService struct {
	requests *RequestService
	similar  *RecommendService
	renderer *report.Renderer
	sheet    *transport.SheetAppender
	mailer   *transport.Mailer
	logger   *zap.Logger
}

func NewReportService(
	requests *RequestService,
	similar *RecommendService,
	renderer *report.Renderer,
	sheet *transport.SheetAppender,
	mailer *transport.Mailer,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		requests: requests,
		similar:  similar,
		renderer: renderer,
		sheet:    sheet,
		mailer:   mailer,
		logger:   logger,
	}
}

// Generate renders the request's report and runs the requested exports. Only
// rendering errors and unknown IDs fail the call; export failures come back
// as outcomes.
func (s *ReportService) Generate(ctx context.Context, id string, opts ReportOptions) (ReportResult, error) {
	req, err := s.requests.Get(id)
	if err != nil {
		return ReportResult{}, err
	}

	var result ReportResult
	if opts.IncludeSimilar {
		ranked, err := s.similar.SimilarTo(id, opts.Similar)
		if err != nil {
			return ReportResult{}, err
		}
		result.Similar = ranked
	}

	format := opts.Format
	if format == "" {
		format = report.FormatText
	}
	doc, err := s.renderer.Render(format, req, result.Similar.Matches)
	if err != nil {
		return ReportResult{}, fmt.Errorf("render report for %q: %w", id, err)
	}
	result.Document = doc

	if opts.AppendToSheet {
		outcome := ExportOutcome{Target: "sheet", Success: true}
		if err := s.sheet.Append(ctx, req); err != nil {
			s.logger.Warn("Sheet append failed", zap.String("id", id), zap.Error(err))
			outcome.Success = false
			outcome.Message = err.Error()
		}
		result.Exports = append(result.Exports, outcome)
	}

	if opts.SendMail {
		outcome := ExportOutcome{Target: "mail", Success: true}
		if err := s.mailer.SendReport(req.Fields.ContactEmails, mailSubject, mailBody, doc); err != nil {
			s.logger.Warn("Report mail failed", zap.String("id", id), zap.Error(err))
			outcome.Success = false
			outcome.Message = err.Error()
		}
		result.Exports = append(result.Exports, outcome)
	}

	return result, nil
}
