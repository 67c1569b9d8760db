package dto

import (
	"formulab/internal/models"
	"formulab/internal/service"
)

// GenerateReportBody configures one report generation.
type GenerateReportBody struct {
	Format         string `json:"format"`          // txt (default) or pdf
	IncludeSimilar bool   `json:"include_similar"` // embed the ranked-similarity section
	Pool           string `json:"pool"`            // catalog (default) or store
	TopK           int    `json:"top_k"`
	SkinTypeFilter bool   `json:"skin_type_filter"`
	ClusterFilter  bool   `json:"cluster_filter"`
	AppendToSheet  bool   `json:"append_to_sheet"`
	SendMail       bool   `json:"send_mail"`
}

type DocumentMeta struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
}

type ReportResponse struct {
	Document DocumentMeta            `json:"document"`
	Similar  SimilarResponse         `json:"similar"`
	Exports  []service.ExportOutcome `json:"exports"`
}

func NewReportResponse(res service.ReportResult) ReportResponse {
	return ReportResponse{
		Document: DocumentMeta{
			Filename:    res.Document.Filename,
			ContentType: res.Document.ContentType,
			SizeBytes:   len(res.Document.Bytes),
		},
		Similar: NewSimilarResponse(res.Similar),
		Exports: res.Exports,
	}
}

// AutofillResponse is the outcome of a bulk upload: the rows projected onto
// the record field set, plus which target fields the header actually mapped.
type AutofillResponse struct {
	MappedFields []string        `json:"mapped_fields"`
	Rows         []models.Fields `json:"rows"`
}
