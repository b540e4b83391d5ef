// =============================================================================
// Pohoda Analytics - XLSX Workbook Exporter
// =============================================================================
//
// One workbook with a sheet per summary table, for people who want the
// monthly numbers in a spreadsheet rather than stitched together from the
// CSVs. Same layout as the CSV summaries: header row, month rows with a
// trailing row total, grand-total row.
//
// =============================================================================

package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vitarsport/pohoda-analytics/internal/aggregate"
)

// WriteWorkbook writes monthly_summary.xlsx with all five summary sheets.
func WriteWorkbook(path string, report *aggregate.Report) error {
	months := report.Months()

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name  string
		table aggregate.MoneyTable
		dims  []string
	}{
		{"CZ CZK", report.ChannelCZK, ChannelsCZ},
		{"SK EUR", report.ChannelEUR, ChannelsSK},
		{"B2B obchodníci", report.SalespersonCZK, Salespeople},
		{"Dodavatelé", report.SupplierCZK, Suppliers},
	}

	for i, s := range sheets {
		if err := addSheet(f, i, s.name); err != nil {
			return err
		}
		if err := fillMoneySheet(f, s.name, s.table, months, s.dims); err != nil {
			return err
		}
	}
	countSheet := "Počty objednávek"
	if err := addSheet(f, len(sheets), countSheet); err != nil {
		return err
	}
	if err := fillCountSheet(f, countSheet, report.ChannelCount, months, AllChannels); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// addSheet renames the default sheet for the first table and creates new
// sheets for the rest.
func addSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		return f.SetSheetName(f.GetSheetName(0), name)
	}
	_, err := f.NewSheet(name)
	return err
}

func fillMoneySheet(f *excelize.File, sheet string, table aggregate.MoneyTable, months, dims []string) error {
	if err := writeHeaderRow(f, sheet, dims); err != nil {
		return err
	}

	grand := make([]decimal.Decimal, len(dims))
	row := 2
	for _, month := range months {
		if err := setCell(f, sheet, 1, row, month); err != nil {
			return err
		}
		rowTotal := decimal.Zero
		for i, d := range dims {
			amount := table.Amount(month, d)
			grand[i] = grand[i].Add(amount)
			rowTotal = rowTotal.Add(amount)
			if err := setCell(f, sheet, i+2, row, amount.InexactFloat64()); err != nil {
				return err
			}
		}
		if err := setCell(f, sheet, len(dims)+2, row, rowTotal.InexactFloat64()); err != nil {
			return err
		}
		row++
	}

	if err := setCell(f, sheet, 1, row, "CELKEM"); err != nil {
		return err
	}
	grandTotal := decimal.Zero
	for i, g := range grand {
		grandTotal = grandTotal.Add(g)
		if err := setCell(f, sheet, i+2, row, g.InexactFloat64()); err != nil {
			return err
		}
	}
	return setCell(f, sheet, len(dims)+2, row, grandTotal.InexactFloat64())
}

func fillCountSheet(f *excelize.File, sheet string, table aggregate.CountTable, months, dims []string) error {
	if err := writeHeaderRow(f, sheet, dims); err != nil {
		return err
	}

	grand := make([]int, len(dims))
	row := 2
	for _, month := range months {
		if err := setCell(f, sheet, 1, row, month); err != nil {
			return err
		}
		rowTotal := 0
		for i, d := range dims {
			count := table.Count(month, d)
			grand[i] += count
			rowTotal += count
			if err := setCell(f, sheet, i+2, row, count); err != nil {
				return err
			}
		}
		if err := setCell(f, sheet, len(dims)+2, row, rowTotal); err != nil {
			return err
		}
		row++
	}

	if err := setCell(f, sheet, 1, row, "CELKEM"); err != nil {
		return err
	}
	grandTotal := 0
	for i, g := range grand {
		grandTotal += g
		if err := setCell(f, sheet, i+2, row, g); err != nil {
			return err
		}
	}
	return setCell(f, sheet, len(dims)+2, row, grandTotal)
}

func writeHeaderRow(f *excelize.File, sheet string, dims []string) error {
	if err := setCell(f, sheet, 1, 1, "Měsíc"); err != nil {
		return err
	}
	for i, d := range dims {
		if err := setCell(f, sheet, i+2, 1, d); err != nil {
			return err
		}
	}
	return setCell(f, sheet, len(dims)+2, 1, "CELKEM")
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
