package xlsxreport

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

func testReport() *domain.Report {
	first := domain.NewRow()
	first.ReportID = "100-1"
	first.BaseReportID = "100"
	first.EventMainComments = "uses machine learning"

	second := domain.NewRow()
	second.ReportID = "200-1"
	second.BaseReportID = "200"

	table := domain.NewTable([]domain.Row{first, second}).
		WithFlag("Mentions Machine Learning", func(r domain.Row) bool { return r.ReportID == "100-1" }).
		WithLabels("AI")

	return &domain.Report{Theme: domain.ThemeArtificialIntelligence, Table: table}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)
	assert.Equal(t, "xlsx", w.Name())

	path, err := w.Write(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "open_fda_ml_results.xlsx"), path)

	rows := readRows(t, path)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Len(t, header, 2+len(domain.RowColumns))
	assert.Equal(t, "Result Label", header[0])
	assert.Equal(t, "Base Report ID", header[1])
	assert.Equal(t, "Mentions Machine Learning", header[len(header)-1])

	assert.Equal(t, "AI-1", rows[1][0])
	assert.Equal(t, "100", rows[1][1])
	assert.Equal(t, "100-1", rows[1][2])
	assert.Equal(t, "TRUE", rows[1][len(rows[1])-1])

	assert.Equal(t, "AI-2", rows[2][0])
	assert.Equal(t, "FALSE", rows[2][len(rows[2])-1])
}

func TestWriter_WriteEmptyTable(t *testing.T) {
	report := &domain.Report{
		Theme: domain.ThemeAlgorithm,
		Table: domain.NewTable(nil).WithLabels("ALG"),
	}

	path, err := New(t.TempDir()).Write(context.Background(), report)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "Result Label", rows[0][0])
}

func TestWriter_WriteMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing")).Write(context.Background(), testReport())
	assert.Error(t, err)
}
