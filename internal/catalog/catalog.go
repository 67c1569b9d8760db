package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"formulab/internal/models"
	"formulab/internal/upload"
)

// Snapshot is an immutable in-memory view of the reference-formulation
// catalog, loaded once at startup and shared read-only afterwards.
type Snapshot struct {
	entries []models.CatalogEntry
}

func NewSnapshot(entries []models.CatalogEntry) *Snapshot {
	return &Snapshot{entries: entries}
}

// Entries returns the catalog in source order. Callers must not mutate the
// returned slice.
func (s *Snapshot) Entries() []models.CatalogEntry {
	return s.entries
}

func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Headers of the columns the catalog carries beyond the shared record fields.
var (
	idAliases      = []string{"처방id", "처방 id", "id"}
	nameAliases    = []string{"처방명", "처방 명"}
	summaryAliases = []string{"특징요약", "특징 요약", "summary"}
)

// LoadXLSX reads a catalog workbook. Sheet may be empty to use the first
// sheet. Field columns are resolved through the same alias table as bulk
// uploads; the entry's own ID, name, and summary columns are catalog-only.
func LoadXLSX(path, sheet string) (*Snapshot, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("catalog %q has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Snapshot, error) {
	if len(rows) == 0 {
		return NewSnapshot(nil), nil
	}

	header := rows[0]
	cm := upload.MapColumns(header)
	idCol := findColumn(header, idAliases)
	nameCol := findColumn(header, nameAliases)
	summaryCol := findColumn(header, summaryAliases)

	if idCol < 0 {
		return nil, fmt.Errorf("catalog header has no formulation ID column")
	}

	var entries []models.CatalogEntry
	for _, row := range rows[1:] {
		id := cellAt(row, idCol)
		if id == "" {
			continue
		}
		entry := models.CatalogEntry{
			ID:      id,
			Fields:  cm.FieldsFromRow(row),
			Summary: cellAt(row, summaryCol),
		}
		// The catalog names its entries 처방명; fall back to it when the
		// shared product-name column is absent.
		if entry.Fields.ProductName == "" {
			entry.Fields.ProductName = cellAt(row, nameCol)
		}
		entries = append(entries, entry)
	}
	return NewSnapshot(entries), nil
}

func findColumn(header []string, names []string) int {
	for col, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return col
			}
		}
	}
	return -1
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Candidates projects the catalog into a recommender pool-shaped view:
// (id, name, fields) triples in source order.
func (s *Snapshot) Candidates() []CandidateView {
	out := make([]CandidateView, len(s.entries))
	for i, e := range s.entries {
		out[i] = CandidateView{ID: e.ID, Name: e.Fields.ProductName, Fields: projectedFields(e)}
	}
	return out
}

// CandidateView decouples catalog consumers from the entry struct.
type CandidateView struct {
	ID     string
	Name   string
	Fields models.Fields
}

// projectedFields folds the catalog-only summary column into the sensory
// description so it participates in similarity matching.
func projectedFields(e models.CatalogEntry) models.Fields {
	f := e.Fields.Clone()
	if e.Summary != "" {
		if f.Feel == "" {
			f.Feel = e.Summary
		} else {
			f.Feel = f.Feel + " " + e.Summary
		}
	}
	return f
}
