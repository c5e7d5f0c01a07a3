package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/csmtools/stylelens/internal/aggregate"
)

// Sheet names in the generated workbook.
const (
	sheetViolations  = "Violations"
	sheetByFile      = "Summary by File"
	sheetByPrinciple = "Summary by CSM Principle"
	sheetByRule      = "Summary by Rule"
)

// violationHeaders is the fixed column order of the violations sheet.
var violationHeaders = []string{
	"File",
	"File Prefix",
	"Checkstyle Rule",
	"CSM Principle",
	"Line Number",
	"Severity",
	"Message",
	"Line Snippet",
}

// violationColWidths matches violationHeaders positionally.
var violationColWidths = []float64{32, 14, 26, 22, 12, 12, 48, 40}

const timestampLayout = "2006-01-02 15:04:05"

// WriteWorkbook renders the report to an xlsx workbook at path. The
// file is written next to its destination and renamed into place, so a
// sink failure never leaves a partial file that looks valid.
func WriteWorkbook(r *Report, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	styles, err := newWorkbookStyles(book)
	if err != nil {
		return fmt.Errorf("workbook styles: %w", err)
	}

	err = writeViolationsSheet(book, styles, r)
	if err != nil {
		return err
	}

	summaries := []struct {
		sheet     string
		keyHeader string
		entries   []aggregate.Entry
	}{
		{sheetByFile, "File", r.ByFile},
		{sheetByPrinciple, "CSM Principle", r.ByPrinciple},
		{sheetByRule, "Checkstyle Rule", r.ByRule},
	}

	for _, s := range summaries {
		err = writeSummarySheet(book, styles, s.sheet, s.keyHeader, s.entries)
		if err != nil {
			return err
		}
	}

	return saveAtomically(book, path)
}

func writeViolationsSheet(book *excelize.File, styles workbookStyles, r *Report) error {
	err := book.SetSheetName(book.GetSheetName(0), sheetViolations)
	if err != nil {
		return fmt.Errorf("rename violations sheet: %w", err)
	}

	for i, header := range violationHeaders {
		col, colErr := excelize.ColumnNumberToName(i + 1)
		if colErr != nil {
			return fmt.Errorf("violations header column: %w", colErr)
		}

		err = book.SetColWidth(sheetViolations, col, col, violationColWidths[i])
		if err != nil {
			return fmt.Errorf("violations column width: %w", err)
		}

		err = setStyledCell(book, sheetViolations, i+1, 1, header, styles.header)
		if err != nil {
			return err
		}
	}

	for rowIdx, record := range r.Records {
		row := rowIdx + 2
		cells := []struct {
			value any
			style int
		}{
			{record.FileName, styles.data},
			{record.FilePrefix, styles.center},
			{record.Rule, styles.data},
			{record.Principle, styles.data},
			{record.Line, styles.center},
			{record.Severity, styles.center},
			{record.Message, styles.data},
			{record.Snippet, styles.data},
		}

		for colIdx, cell := range cells {
			err = setStyledCell(book, sheetViolations, colIdx+1, row, cell.value, cell.style)
			if err != nil {
				return err
			}
		}
	}

	return writeMetadata(book, styles, r, len(r.Records)+4)
}

func writeMetadata(book *excelize.File, styles workbookStyles, r *Report, startRow int) error {
	generated := "Report Generated: " + r.GeneratedAt.Format(timestampLayout)

	err := setStyledCell(book, sheetViolations, 1, startRow, generated, styles.bold)
	if err != nil {
		return err
	}

	total := fmt.Sprintf("Total Violations: %d", r.Total())

	return setStyledCell(book, sheetViolations, 1, startRow+1, total, styles.bold)
}

func writeSummarySheet(
	book *excelize.File,
	styles workbookStyles,
	sheet string,
	keyHeader string,
	entries []aggregate.Entry,
) error {
	_, err := book.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	err = book.SetColWidth(sheet, "A", "A", 32)
	if err != nil {
		return fmt.Errorf("summary column width: %w", err)
	}

	err = book.SetColWidth(sheet, "B", "B", 16)
	if err != nil {
		return fmt.Errorf("summary column width: %w", err)
	}

	err = setStyledCell(book, sheet, 1, 1, keyHeader, styles.header)
	if err != nil {
		return err
	}

	err = setStyledCell(book, sheet, 2, 1, "Violation Count", styles.header)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		row := i + 2

		err = setStyledCell(book, sheet, 1, row, entry.Key, styles.data)
		if err != nil {
			return err
		}

		err = setStyledCell(book, sheet, 2, row, entry.Count, styles.center)
		if err != nil {
			return err
		}
	}

	return nil
}

func setStyledCell(book *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	err = book.SetCellValue(sheet, cell, value)
	if err != nil {
		return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
	}

	err = book.SetCellStyle(sheet, cell, cell, style)
	if err != nil {
		return fmt.Errorf("style cell %s!%s: %w", sheet, cell, err)
	}

	return nil
}

// saveAtomically writes to a sibling temp file and renames into place.
func saveAtomically(book *excelize.File, path string) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")

	err := book.SaveAs(tmp)
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	err = os.Rename(tmp, path)
	if err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("finalize workbook: %w", err)
	}

	return nil
}

type workbookStyles struct {
	header int
	data   int
	center int
	bold   int
}

func newWorkbookStyles(book *excelize.File) (workbookStyles, error) {
	thin := []excelize.Border{
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	header, err := book.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F3864"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	})
	if err != nil {
		return workbookStyles{}, err
	}

	data, err := book.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true},
		Border:    thin,
	})
	if err != nil {
		return workbookStyles{}, err
	}

	center, err := book.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thin,
	})
	if err != nil {
		return workbookStyles{}, err
	}

	bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return workbookStyles{}, err
	}

	return workbookStyles{header: header, data: data, center: center, bold: bold}, nil
}
