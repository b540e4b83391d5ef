package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vitarsport/pohoda-analytics/internal/aggregate"
	"github.com/vitarsport/pohoda-analytics/internal/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleOrders() []types.Record {
	return []types.Record{
		{
			Kind:           types.KindOrder,
			Number:         "112045",
			InternalNumber: "OBJ-0001",
			Date:           "2025-03-12",
			Currency:       types.CZK,
			Company:        "Sportovní potřeby s.r.o.",
			Name:           "Jan Novák",
			City:           "Zlín",
			Zip:            "760 01",
			Channel:        types.ChannelEnervitCZ,
			Country:        types.CountryCZ,
			Supplier:       types.SupplierEnervit,
			IsExecuted:     true,
			TotalCZK:       dec("1021"),
			TotalCZKNet:    dec("900"),
		},
		{
			Kind:        types.KindOrder,
			Number:      "500001",
			Date:        "2025-03-20",
			Currency:    types.EUR,
			Centre:      "JGO",
			Channel:     types.ChannelB2B,
			Salesperson: types.SalespersonJirka,
			Country:     types.CountrySK,
			Supplier:    types.SupplierVitar,
			TotalEUR:    dec("99.90"),
			TotalEURNet: dec("82.56"),
		},
	}
}

func sampleItems() []types.LineItem {
	return []types.LineItem{
		{
			DocumentNumber: "112045",
			Date:           "2025-03-12",
			Currency:       types.CZK,
			Channel:        types.ChannelEnervitCZ,
			Country:        types.CountryCZ,
			Supplier:       types.SupplierEnervit,
			ProductCode:    "X1",
			ProductName:    "Multivitamin 60 tbl",
			EAN:            "8594001234567",
			Quantity:       dec("2"),
			Delivered:      dec("1"),
			Unit:           "ks",
			UnitPrice:      dec("100"),
			TotalCZK:       dec("242"),
			TotalCZKNet:    dec("200"),
		},
	}
}

func sampleReport() *aggregate.Report {
	return aggregate.Build([]types.Record{
		{Date: "2025-01-05", Currency: types.CZK, Channel: types.ChannelEnervitCZ,
			Supplier: types.SupplierEnervit, TotalCZK: dec("1500")},
		{Date: "2025-01-09", Currency: types.EUR, Channel: types.ChannelRoyalbaySK,
			Supplier: types.SupplierAries, TotalEUR: dec("80")},
		{Date: "2025-02-01", Currency: types.CZK, Channel: types.ChannelB2B,
			Salesperson: types.SalespersonKarolina, Supplier: types.SupplierVitar, TotalCZK: dec("4000")},
	})
}

// =============================================================================
// CSV
// =============================================================================

func TestWriteOrdersCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "all_orders.csv")
	records := sampleOrders()

	require.NoError(t, WriteOrdersCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus one row per record.
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, ordersHeader, rows[0])

	byName := func(row []string, name string) string {
		for i, h := range rows[0] {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}

	assert.Equal(t, "112045", byName(rows[1], "order_number"))
	assert.Equal(t, "ESHOP_ENERVIT_CZ", byName(rows[1], "channel"))
	assert.Equal(t, "1021", byName(rows[1], "total_czk"))
	assert.Equal(t, "true", byName(rows[1], "is_executed"))
	assert.Equal(t, "99.9", byName(rows[2], "total_eur"))
	assert.Equal(t, "0", byName(rows[2], "total_czk"))
	assert.Equal(t, "Jirka", byName(rows[2], "salesperson"))
}

func TestWriteMonthlySummaries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteMonthlySummaries(dir, sampleReport()))

	f, err := os.Open(filepath.Join(dir, "monthly_summary_CZ_CZK.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header, two month rows, grand total.
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Měsíc", "ESHOP_ENERVIT_CZ", "ESHOP_ROYALBAY_CZ", "B2B", "CZ CELKEM (CZK)"}, rows[0])
	assert.Equal(t, []string{"2025-01", "1500", "0", "0", "1500"}, rows[1])
	assert.Equal(t, []string{"2025-02", "0", "0", "4000", "4000"}, rows[2])
	assert.Equal(t, []string{"CELKEM", "1500", "0", "4000", "5500"}, rows[3])

	// The SK summary sees only the EUR record.
	f2, err := os.Open(filepath.Join(dir, "monthly_summary_SK_EUR.csv"))
	require.NoError(t, err)
	defer f2.Close()
	rows, err = csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"2025-01", "0", "80", "0", "80"}, rows[1])

	// The salesperson breakdown only carries B2B money.
	f3, err := os.Open(filepath.Join(dir, "b2b_by_salesperson.csv"))
	require.NoError(t, err)
	defer f3.Close()
	rows, err = csv.NewReader(f3).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"CELKEM", "4000", "0", "0", "0", "4000"}, rows[len(rows)-1])
}

// =============================================================================
// JS DATA FILES
// =============================================================================

// decodeJS strips the const prelude and parses the JSON array literal.
func decodeJS(t *testing.T, path string, out any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	_, literal, found := strings.Cut(content, "= ")
	require.True(t, found, "missing const assignment in %s", path)
	literal = strings.TrimSuffix(strings.TrimSpace(literal), ";")
	require.NoError(t, json.Unmarshal([]byte(literal), out))
}

func TestWriteOrdersJSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteOrdersJS(dir, sampleOrders(), sampleItems()))

	var orders []orderPayload
	decodeJS(t, filepath.Join(dir, "data.js"), &orders)
	require.Len(t, orders, 2)

	assert.Equal(t, "112045", orders[0].OrderNumber)
	assert.Equal(t, "OBJ-0001", orders[0].InternalNumber)
	assert.Equal(t, "Jan Novák", orders[0].CustomerName)
	assert.Nil(t, orders[0].Salesperson, "e-shop salesperson is null")
	assert.Equal(t, 1021.0, orders[0].TotalCZK)
	require.NotNil(t, orders[1].Salesperson)
	assert.Equal(t, types.SalespersonJirka, *orders[1].Salesperson)
	assert.Equal(t, 99.9, orders[1].TotalEUR)

	var items []itemPayload
	decodeJS(t, filepath.Join(dir, "items.js"), &items)
	require.Len(t, items, 1)
	assert.Equal(t, "X1", items[0].ProductCode)
	require.NotNil(t, items[0].Delivered)
	assert.Equal(t, 1.0, *items[0].Delivered)
	assert.Equal(t, 242.0, items[0].TotalCZK)
	assert.Empty(t, items[0].InvoiceNumber)
}

func TestWriteInvoicesJSPartitions(t *testing.T) {
	regular := types.Partition{
		Records: []types.Record{{
			Kind: types.KindInvoice, Number: "250200", LinkedNumber: "99001",
			Date: "2025-05-06", Currency: types.EUR, Channel: types.ChannelB2B,
			Salesperson: types.SalespersonJirka, Country: types.CountrySK,
			Supplier: types.SupplierVitar, IsPaid: true, LiquidationDate: "2025-05-20",
			TotalEUR: dec("240"), TotalEURNet: dec("200"), TotalCZK: dec("6000"),
		}},
		Items: []types.LineItem{{
			DocumentNumber: "250200", LinkedNumber: "99001", Currency: types.EUR,
			Channel: types.ChannelB2B, Salesperson: types.SalespersonJirka,
			Country: types.CountrySK, Supplier: types.SupplierVitar,
			ProductCode: "W1", Quantity: dec("12"), TotalEUR: dec("240"),
		}},
	}
	sponsoring := types.Partition{
		Records: []types.Record{{
			Kind: types.KindInvoice, Number: "250100", LinkedNumber: "112045",
			Currency: types.CZK, Channel: types.ChannelEnervitCZ,
			Country: types.CountryCZ, Supplier: types.SupplierEnervit,
			PriceLevel: types.PriceLevelSponsoring, TotalCZK: dec("900"),
		}},
	}

	dir := t.TempDir()
	require.NoError(t, WriteInvoicesJS(dir, regular, sponsoring))

	var invoices []invoicePayload
	decodeJS(t, filepath.Join(dir, "invoices_data.js"), &invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, "250200", invoices[0].InvoiceNumber)
	assert.Equal(t, "99001", invoices[0].OrderNumber)
	assert.True(t, invoices[0].IsPaid)
	assert.Equal(t, 240.0, invoices[0].TotalEUR)

	var invItems []itemPayload
	decodeJS(t, filepath.Join(dir, "invoices_items.js"), &invItems)
	require.Len(t, invItems, 1)
	assert.Equal(t, "250200", invItems[0].InvoiceNumber)
	assert.Equal(t, "99001", invItems[0].OrderNumber)
	assert.Nil(t, invItems[0].Delivered, "invoice items carry no delivered quantity")

	var sponsoringRows []invoicePayload
	decodeJS(t, filepath.Join(dir, "sponsoring_data.js"), &sponsoringRows)
	require.Len(t, sponsoringRows, 1)
	assert.Equal(t, types.PriceLevelSponsoring, sponsoringRows[0].PriceLevel)

	var sponsoringItems []itemPayload
	decodeJS(t, filepath.Join(dir, "sponsoring_items.js"), &sponsoringItems)
	assert.Empty(t, sponsoringItems)
}

// =============================================================================
// XLSX
// =============================================================================

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monthly_summary.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"CZ CZK", "SK EUR", "B2B obchodníci", "Dodavatelé", "Počty objednávek"}, f.GetSheetList())

	got, err := f.GetCellValue("CZ CZK", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1500", got)

	got, err = f.GetCellValue("SK EUR", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Měsíc", got)

	// Count sheet grand total: three orders in total.
	rows, err := f.GetRows("Počty objednávek")
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "CELKEM", last[0])
	assert.Equal(t, "3", last[len(last)-1])
}

// =============================================================================
// CONSOLE
// =============================================================================

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "CZ MARKET - MĚSÍČNÍ PŘEHLED (CZK)")
	assert.Contains(t, out, "SK MARKET - MĚSÍČNÍ PŘEHLED (EUR)")
	assert.Contains(t, out, "B2B PODLE OBCHODNÍKA (CZK)")
	assert.Contains(t, out, "PODLE DODAVATELE (CZK)")
	assert.Contains(t, out, "POČET OBJEDNÁVEK PODLE KANÁLU")
	assert.Contains(t, out, "1 500,00 Kč")
	assert.Contains(t, out, "80,00 €")
}

func TestFormatCzechAmounts(t *testing.T) {
	assert.Equal(t, "1 234 567,89 Kč", FormatCZK(dec("1234567.89")))
	assert.Equal(t, "0,00 Kč", FormatCZK(decimal.Zero))
	assert.Equal(t, "-12 000,50 Kč", FormatCZK(dec("-12000.5")))
	assert.Equal(t, "999,90 €", FormatEUR(dec("999.9")))
	assert.Equal(t, "1 000,00 €", FormatEUR(dec("1000")))
}
