package models

// CatalogEntry is a read-only reference formulation. Entries carry their own
// pre-existing identifiers from the source dataset and are immutable for the
// lifetime of the process.
type CatalogEntry struct {
	ID      string `json:"id"`
	Fields  Fields `json:"fields"`
	Summary string `json:"summary"` // 특징요약 column of the source workbook
}
