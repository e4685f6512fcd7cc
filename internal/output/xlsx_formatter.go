package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// XLSXFormatter writes the report as a single-sheet Excel workbook, one
// row per line item with the payable amount in bold at the bottom.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

func (x XLSXFormatter) Format(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetCellValue(sheet, "A1", report.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", "Line"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "B2", "Amount (AED)"); err != nil {
		return nil, err
	}

	row := 3
	for _, line := range report.Lines {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Label); err != nil {
			return nil, err
		}
		amount, _ := line.Amount.Round(2).Float64()
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), amount); err != nil {
			return nil, err
		}
		row++
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), report.TotalLabel); err != nil {
		return nil, err
	}
	total, _ := report.Total.Round(2).Float64()
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), total); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), bold); err != nil {
		return nil, err
	}
	row += 2

	for _, note := range report.Notes {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Note: "+note); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 44); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "B", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
