// =============================================================================
// Pohoda Analytics - Console Report
// =============================================================================
//
// Fixed-width monthly tables printed after an analysis run: the CZ market in
// CZK, the SK market in EUR, the B2B salesperson breakdown, suppliers, and
// order counts per channel. Amounts use Czech number formatting (space as
// thousands separator, comma as decimal separator) with a currency suffix.
//
// =============================================================================

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vitarsport/pohoda-analytics/internal/aggregate"
)

// PrintReport renders every summary table to w.
func PrintReport(w io.Writer, report *aggregate.Report) {
	months := report.Months()

	printMoneyTable(w, "CZ MARKET - MĚSÍČNÍ PŘEHLED (CZK)", "CZ CELKEM",
		report.ChannelCZK, months, ChannelsCZ, 25, FormatCZK)
	printMoneyTable(w, "SK MARKET - MĚSÍČNÍ PŘEHLED (EUR)", "SK CELKEM",
		report.ChannelEUR, months, ChannelsSK, 25, FormatEUR)
	printMoneyTable(w, "B2B PODLE OBCHODNÍKA (CZK)", "B2B CELKEM",
		report.SalespersonCZK, months, Salespeople, 22, FormatCZK)
	printMoneyTable(w, "PODLE DODAVATELE (CZK)", "CELKEM",
		report.SupplierCZK, months, Suppliers, 25, FormatCZK)
	printCountTable(w, "POČET OBJEDNÁVEK PODLE KANÁLU",
		report.ChannelCount, months, AllChannels, 20)
}

func printMoneyTable(w io.Writer, title, totalLabel string, table aggregate.MoneyTable, months, dims []string, width int, format func(decimal.Decimal) string) {
	printTitle(w, title, 12+width*(len(dims)+1))

	fmt.Fprintf(w, "\n%-12s", "Měsíc")
	for _, d := range dims {
		fmt.Fprintf(w, "%*s", width, d)
	}
	fmt.Fprintf(w, "%*s\n", width, totalLabel)
	fmt.Fprintln(w, strings.Repeat("-", 12+width*(len(dims)+1)))

	grand := make([]decimal.Decimal, len(dims))
	for _, month := range months {
		fmt.Fprintf(w, "%-12s", month)
		rowTotal := decimal.Zero
		for i, d := range dims {
			amount := table.Amount(month, d)
			grand[i] = grand[i].Add(amount)
			rowTotal = rowTotal.Add(amount)
			fmt.Fprintf(w, "%*s", width, format(amount))
		}
		fmt.Fprintf(w, "%*s\n", width, format(rowTotal))
	}

	fmt.Fprintln(w, strings.Repeat("-", 12+width*(len(dims)+1)))
	fmt.Fprintf(w, "%-12s", "CELKEM")
	grandTotal := decimal.Zero
	for _, g := range grand {
		grandTotal = grandTotal.Add(g)
		fmt.Fprintf(w, "%*s", width, format(g))
	}
	fmt.Fprintf(w, "%*s\n", width, format(grandTotal))
}

func printCountTable(w io.Writer, title string, table aggregate.CountTable, months, dims []string, width int) {
	printTitle(w, title, 12+width*(len(dims)+1))

	fmt.Fprintf(w, "\n%-12s", "Měsíc")
	for _, d := range dims {
		fmt.Fprintf(w, "%*s", width, d)
	}
	fmt.Fprintf(w, "%*s\n", width, "CELKEM")
	fmt.Fprintln(w, strings.Repeat("-", 12+width*(len(dims)+1)))

	grand := make([]int, len(dims))
	for _, month := range months {
		fmt.Fprintf(w, "%-12s", month)
		rowTotal := 0
		for i, d := range dims {
			count := table.Count(month, d)
			grand[i] += count
			rowTotal += count
			fmt.Fprintf(w, "%*d", width, count)
		}
		fmt.Fprintf(w, "%*d\n", width, rowTotal)
	}

	fmt.Fprintln(w, strings.Repeat("-", 12+width*(len(dims)+1)))
	fmt.Fprintf(w, "%-12s", "CELKEM")
	grandTotal := 0
	for _, g := range grand {
		grandTotal += g
		fmt.Fprintf(w, "%*d", width, g)
	}
	fmt.Fprintf(w, "%*d\n", width, grandTotal)
}

func printTitle(w io.Writer, title string, width int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// FormatCZK renders an amount as e.g. "1 234 567,89 Kč".
func FormatCZK(d decimal.Decimal) string {
	return formatCzech(d) + " Kč"
}

// FormatEUR renders an amount as e.g. "1 234,50 €".
func FormatEUR(d decimal.Decimal) string {
	return formatCzech(d) + " €"
}

// formatCzech renders two decimal places with a comma separator and spaces
// between thousands groups.
func formatCzech(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
