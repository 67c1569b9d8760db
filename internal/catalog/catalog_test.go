package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCatalogFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, wb.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		{"처방ID", "처방명", "제형", "기능성", "사용감설명", "특징요약"},
		{"F-001", "촉촉워시", "젤", "보습, 진정", "촉촉하고 산뜻함", "저자극 베이스"},
		{"F-002", "리치크림", "로션", "미백", "리치하고 부드러움", ""},
		{"", "ID 없는 행", "젤", "", "", ""},
	})

	snap, err := LoadXLSX(path, "")
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())

	entries := snap.Entries()
	assert.Equal(t, "F-001", entries[0].ID)
	assert.Equal(t, "촉촉워시", entries[0].Fields.ProductName)
	assert.Equal(t, []string{"보습", "진정"}, entries[0].Fields.Claims)
	assert.Equal(t, "저자극 베이스", entries[0].Summary)
	assert.Equal(t, "F-002", entries[1].ID)
}

func TestLoadXLSXWithoutIDColumnFails(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		{"처방명", "제형"},
		{"이름만", "젤"},
	})

	_, err := LoadXLSX(path, "")
	assert.Error(t, err)
}

func TestCandidatesFoldSummaryIntoFeel(t *testing.T) {
	path := writeCatalogFile(t, [][]interface{}{
		{"처방ID", "처방명", "사용감설명", "특징요약"},
		{"F-001", "촉촉워시", "촉촉하고 산뜻함", "저자극 베이스"},
		{"F-002", "리치크림", "", "고보습 밤 타입"},
	})

	snap, err := LoadXLSX(path, "")
	require.NoError(t, err)

	cands := snap.Candidates()
	require.Len(t, cands, 2)
	assert.Equal(t, "촉촉하고 산뜻함 저자극 베이스", cands[0].Fields.Feel)
	assert.Equal(t, "고보습 밤 타입", cands[1].Fields.Feel)
	assert.Equal(t, "촉촉워시", cands[0].Name)
}
