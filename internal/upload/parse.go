package upload

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"formulab/internal/models"
)

// Autofill is the result of mapping an uploaded tabular file onto the record
// field set. MappedFields is empty when no source column matched anything,
// which is a defined empty outcome rather than an error.
type Autofill struct {
	Rows         []models.Fields
	MappedFields []Field
}

// ParseXLSX reads the first sheet of an xlsx workbook. The first row is
// treated as the header.
func ParseXLSX(r io.Reader) (Autofill, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return Autofill{}, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return Autofill{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return Autofill{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows), nil
}

// ParseCSV reads a comma-separated file with a header row.
func ParseCSV(r io.Reader) (Autofill, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated

	rows, err := reader.ReadAll()
	if err != nil {
		return Autofill{}, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows), nil
}

func fromRows(rows [][]string) Autofill {
	if len(rows) == 0 {
		return Autofill{}
	}

	cm := MapColumns(rows[0])
	out := Autofill{MappedFields: cm.MappedFields()}
	if len(cm) == 0 {
		return out
	}

	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		out.Rows = append(out.Rows, cm.FieldsFromRow(row))
	}
	return out
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
