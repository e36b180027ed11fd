package htmlreport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

const problemFlag domain.Column = "Has Relevant Problem Type"

func testReport() *domain.Report {
	row := domain.NewRow()
	row.ReportID = "1234-5"
	row.BaseReportID = "1234"
	row.SourceURL = "https://api.fda.gov/device/event.json?search=algorithm*&limit=500"
	row.AdverseEventFlag = "y"
	row.DeviceName = "<script>alert(1)</script>"
	row.EventMainComments = "the algorithm failed"
	row.EventManufacturerComments = ""

	table := domain.NewTable([]domain.Row{row}).
		WithFlag(problemFlag, func(domain.Row) bool { return true }).
		WithLabels("ALG")

	return &domain.Report{
		Theme:          domain.ThemeAlgorithm,
		Title:          "Algorithm Report",
		Description:    "<p>Intro with <a href=\"https://open.fda.gov/apis/\">Open FDA</a></p>",
		Criteria:       []string{"There were <b>1</b> adverse events", "Second criterion"},
		HighlightTerms: []string{"algorithm"},
		Table:          table,
		GeneratedAt:    time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
	}
}

func render(t *testing.T, report *domain.Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report))
	return buf.String()
}

func TestRender(t *testing.T) {
	out := render(t, testReport())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Algorithm Report</title>")
	assert.Contains(t, out, "<h1>Algorithm Report</h1>")
	assert.Contains(t, out, `<p>Intro with <a href="https://open.fda.gov/apis/">Open FDA</a></p>`)
	assert.Contains(t, out, "<ol><li>There were <b>1</b> adverse events</li><li>Second criterion</li></ol>")
	assert.Contains(t, out, `<h3 id="ALG-1">Result ALG-1</h3>`)
	assert.Contains(t, out, `<a href="https://api.fda.gov/device/event.json?search=algorithm*&amp;limit=500" target="blank">Original Source Query</a>`)
	assert.Contains(t, out, `<b>Event Main Comments</b>: the <b style="color:red;">algorithm</b> failed`)
	assert.Contains(t, out, "<b>Has Relevant Problem Type</b>: true")
	assert.Contains(t, out, "<b>Report ID</b>: 1234-5")
}

func TestRender_EscapesRowValues(t *testing.T) {
	out := render(t, testReport())

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRender_DefaultHighlightTerms(t *testing.T) {
	report := testReport()
	report.HighlightTerms = nil

	out := render(t, report)
	assert.Contains(t, out, `<b style="color:red;">algorithm</b>`)
}

func TestRender_EmptyTable(t *testing.T) {
	report := testReport()
	report.Table = domain.NewTable(nil).WithLabels("ALG")

	out := render(t, report)
	assert.Contains(t, out, "<h2>Results</h2>")
	assert.NotContains(t, out, "<h3")
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)
	assert.Equal(t, "html", w.Name())

	path, err := w.Write(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "open_fda_algorithms_results.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Algorithm Report</h1>")
}

func TestWriter_WriteMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"))

	_, err := w.Write(context.Background(), testReport())
	assert.Error(t, err)
}

func TestWriter_WriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir()).Write(ctx, testReport())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender_CopyrightNotice(t *testing.T) {
	out := render(t, testReport())

	assert.Contains(t, out, "<p>Copyright © 2024 Kevin Garwood. This software and its outputs have been "+
		`open-sourced through the <a href="https://mit-license.org/">MIT license</a>.</p>`)
}

func TestRender_HighlightKeepsCommentEntitiesIntact(t *testing.T) {
	report := testReport()
	row := report.Table.Rows()[0]
	row.EventMainComments = "pump & amplifier failed"
	report.Table = domain.NewTable([]domain.Row{row}).WithLabels("ALG")
	report.HighlightTerms = []string{"amp"}

	out := render(t, report)

	assert.Contains(t, out, `pump &amp; <b style="color:red;">amp</b>lifier failed`)
	assert.NotContains(t, out, "&amp;amp;")
}
