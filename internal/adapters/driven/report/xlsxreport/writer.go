// Package xlsxreport writes a report's labelled table to an Excel workbook.
package xlsxreport

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// SheetName is the only worksheet in the workbook.
const SheetName = "Main Results"

// FileExtension is appended to the theme's base file name.
const FileExtension = ".xlsx"

// Writer writes one workbook per report into a run directory.
type Writer struct {
	dir string
}

// New creates a writer that places workbooks in dir.
func New(dir string) *Writer {
	return &Writer{dir: dir}
}

// Name returns the writer name.
func (w *Writer) Name() string { return "xlsx" }

// Write saves report's table to <dir>/<base file name>.xlsx. The first row
// holds the column names, Result Label first; each following row is one
// table row in table order.
func (w *Writer) Write(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := fill(f, report.Table); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, report.Theme.BaseFileName()+FileExtension)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func fill(f *excelize.File, table domain.Table) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open sheet: %w", err)
	}

	columns := table.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = string(c)
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < table.Len(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, table.Record(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	return nil
}
