package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "scores.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReader(t *testing.T) {
	path := writeFixture(t, [][]interface{}{
		{"Date", "Score"},
		{"2024-01-02", 50},
		{"2024-01-01", 40},
		{"2024-01-01", 45},
	})

	s, err := NewReader(path).Read()

	require.NoError(t, err)
	require.Len(t, s, 2)
	// Sorted ascending, duplicate date resolved last-write-wins.
	assert.Equal(t, "2024-01-01", s[0].Date.String())
	assert.Equal(t, 45.0, s[0].Score)
	assert.Equal(t, 50.0, s[1].Score)
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.xlsx")).Read()
	assert.Error(t, err)
}

func TestReader_BadHeader(t *testing.T) {
	path := writeFixture(t, [][]interface{}{
		{"When", "Value"},
		{"2024-01-01", 40},
	})

	_, err := NewReader(path).Read()
	assert.Error(t, err)
}

func TestReader_ScoreOutOfRange(t *testing.T) {
	path := writeFixture(t, [][]interface{}{
		{"date", "score"},
		{"2024-01-01", 140},
	})

	_, err := NewReader(path).Read()
	assert.Error(t, err)
}
