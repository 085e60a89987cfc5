package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/orbitwatch/neoquery/internal/domain"
)

const sheetName = "Close Approaches"

// WriteXLSX writes results as a spreadsheet with a header row and one
// flattened row per approach. Cell values reuse the CSV formatting so the
// three-decimal contract holds across formats.
func WriteXLSX(w io.Writer, results Results) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := setRow(f, 1, Fieldnames); err != nil {
		return err
	}

	rowNum := 2
	for ca := range results {
		if err := setRow(f, rowNum, xlsxRow(ca)); err != nil {
			return err
		}
		rowNum++
	}

	for i := 1; i <= len(Fieldnames); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		if err := f.SetColWidth(sheetName, colName, colName, 20); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func xlsxRow(ca *domain.CloseApproach) []string {
	return csvRow(ca)
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
