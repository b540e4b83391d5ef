// =============================================================================
// Pohoda Analytics - CSV Exporter
// =============================================================================
//
// Two kinds of CSV output:
//   - all_orders.csv: one row per order record with the full attribute set;
//   - monthly summaries: one row per month with a fixed dimension-value
//     column set, a row total, and a final grand-total row.
//
// Column orders are fixed; downstream spreadsheets reference them by
// position.
//
// =============================================================================

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vitarsport/pohoda-analytics/internal/aggregate"
	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// Fixed dimension-value orders for the summary tables. B2B appears in both
// market summaries because B2B documents exist in both currencies.
var (
	ChannelsCZ = []string{
		string(types.ChannelEnervitCZ),
		string(types.ChannelRoyalbayCZ),
		string(types.ChannelB2B),
	}
	ChannelsSK = []string{
		string(types.ChannelEnervitSK),
		string(types.ChannelRoyalbaySK),
		string(types.ChannelB2B),
	}
	AllChannels = []string{
		string(types.ChannelEnervitCZ),
		string(types.ChannelEnervitSK),
		string(types.ChannelRoyalbayCZ),
		string(types.ChannelRoyalbaySK),
		string(types.ChannelB2B),
	}
	Salespeople = []string{
		types.SalespersonKarolina,
		types.SalespersonJirka,
		types.SalespersonStepan,
		types.SalespersonHouse,
	}
	Suppliers = []string{
		string(types.SupplierEnervit),
		string(types.SupplierAries),
		string(types.SupplierVitar),
	}
)

var ordersHeader = []string{
	"order_number", "internal_number", "date", "date_from", "date_to",
	"company", "customer_name", "city", "street", "zip", "customer_country",
	"ico", "dic", "email", "phone", "currency", "centre",
	"channel", "salesperson", "country", "supplier",
	"payment_type", "price_level", "is_executed", "is_delivered",
	"note", "int_note", "total_czk", "total_czk_bez_dph", "total_eur", "total_eur_bez_dph",
}

// WriteOrdersCSV writes the flat per-record export.
func WriteOrdersCSV(path string, records []types.Record) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write(ordersHeader); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				r.Number, r.InternalNumber, r.Date, r.DateFrom, r.DateTo,
				r.Company, r.Name, r.City, r.Street, r.Zip, r.CustomerCountry,
				r.ICO, r.DIC, r.Email, r.Phone, string(r.Currency), r.Centre,
				string(r.Channel), r.Salesperson, string(r.Country), string(r.Supplier),
				r.PaymentType, r.PriceLevel, strconv.FormatBool(r.IsExecuted), strconv.FormatBool(r.IsDelivered),
				r.Note, r.IntNote,
				formatNumber(r.TotalCZK), formatNumber(r.TotalCZKNet),
				formatNumber(r.TotalEUR), formatNumber(r.TotalEURNet),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSummaryCSV writes one monthly summary table: a header, one row per
// month with a trailing row total, and a grand-total row.
func WriteSummaryCSV(path, monthHeader, totalHeader string, table aggregate.MoneyTable, months, dimensions []string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		header := append([]string{monthHeader}, dimensions...)
		header = append(header, totalHeader)
		if err := w.Write(header); err != nil {
			return err
		}

		grand := make([]decimal.Decimal, len(dimensions))
		for _, month := range months {
			row := []string{month}
			rowTotal := decimal.Zero
			for i, dim := range dimensions {
				amount := table.Amount(month, dim)
				grand[i] = grand[i].Add(amount)
				rowTotal = rowTotal.Add(amount)
				row = append(row, formatNumber(amount))
			}
			row = append(row, formatNumber(rowTotal))
			if err := w.Write(row); err != nil {
				return err
			}
		}

		total := []string{"CELKEM"}
		grandTotal := decimal.Zero
		for _, g := range grand {
			grandTotal = grandTotal.Add(g)
			total = append(total, formatNumber(g))
		}
		total = append(total, formatNumber(grandTotal))
		return w.Write(total)
	})
}

// WriteMonthlySummaries writes the three report CSVs next to all_orders.csv:
// CZ market (CZK), SK market (EUR) and the B2B salesperson breakdown.
func WriteMonthlySummaries(dir string, report *aggregate.Report) error {
	months := report.Months()

	type summary struct {
		name        string
		totalHeader string
		table       aggregate.MoneyTable
		dims        []string
	}
	summaries := []summary{
		{"monthly_summary_CZ_CZK.csv", "CZ CELKEM (CZK)", report.ChannelCZK, ChannelsCZ},
		{"monthly_summary_SK_EUR.csv", "SK CELKEM (EUR)", report.ChannelEUR, ChannelsSK},
		{"b2b_by_salesperson.csv", "B2B CELKEM (CZK)", report.SalespersonCZK, Salespeople},
	}
	for _, s := range summaries {
		if err := WriteSummaryCSV(dir+"/"+s.name, "Měsíc", s.totalHeader, s.table, months, s.dims); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// formatNumber renders a decimal the way a spreadsheet expects a plain
// number: no exponent, no trailing zeros beyond the value's own scale.
func formatNumber(d decimal.Decimal) string {
	return d.String()
}
