// Package export renders parse record history as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"polisched/internal/domain"
)

const sheetName = "Parse Records"

var headers = []string{
	"Parsed At", "Insurer", "Document Type", "Policy Number",
	"Monthly Premium", "Source", "Source Name", "Status", "Pages", "Duration (ms)",
}

// WriteXLSX writes the summaries as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, summaries []domain.RecordSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: rename sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteXLSX: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("export.WriteXLSX: header %q: %w", h, err)
		}
	}

	for i, s := range summaries {
		values := []any{
			s.ParsedAt.Format("2006-01-02 15:04:05"),
			s.Insurer,
			s.DocumentName,
			s.PolicyNumber,
			nil,
			string(s.SourceType),
			s.SourceName,
			string(s.Status),
			s.PageCount,
			s.DurationMS,
		}
		if s.MonthlyPremium != nil {
			values[4] = *s.MonthlyPremium
		}

		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("export.WriteXLSX: cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("export.WriteXLSX: row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: write: %w", err)
	}
	return nil
}
