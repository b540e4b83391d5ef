// =============================================================================
// Pohoda Analytics - Aggregation Engine
// =============================================================================
//
// The monthly report is a pure left fold over classified order records into
// six tables keyed by (month, dimension). Every table is a commutative
// monoid (decimal sum or count), so the result is independent of record
// order and re-aggregating a superset yields the superset of partial sums.
// Reports are built fresh per run and never updated incrementally.
//
// ROUTING RULES:
//   - channel money tables are split by the record's own currency: a CZK
//     record contributes TotalCZK to the CZK table, a EUR record TotalEUR
//     to the EUR table, never both and never converted;
//   - the channel count table counts every record regardless of currency;
//   - the salesperson tables only see B2B records;
//   - the supplier table accumulates TotalCZK for every record (for EUR
//     orders that reference amount is zero by construction).
//
// =============================================================================

package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// MonthUnknown is the month key for records without a date.
const MonthUnknown = "Unknown"

// Key addresses one cell of a monthly table: a month in YYYY-MM form (or
// MonthUnknown) and a dimension value (channel, salesperson or supplier
// name).
type Key struct {
	Month     string
	Dimension string
}

// MoneyTable accumulates decimal totals per (month, dimension).
type MoneyTable map[Key]decimal.Decimal

// Add sums the given amount into the cell.
func (t MoneyTable) Add(k Key, amount decimal.Decimal) {
	t[k] = t[k].Add(amount)
}

// Amount returns the accumulated value of a cell, zero when absent.
func (t MoneyTable) Amount(month, dimension string) decimal.Decimal {
	return t[Key{Month: month, Dimension: dimension}]
}

// CountTable accumulates record counts per (month, dimension).
type CountTable map[Key]int

// Count returns the accumulated count of a cell, zero when absent.
func (t CountTable) Count(month, dimension string) int {
	return t[Key{Month: month, Dimension: dimension}]
}

// Report holds the six monthly aggregate tables consumed by the exporters.
type Report struct {
	ChannelCZK       MoneyTable
	ChannelEUR       MoneyTable
	ChannelCount     CountTable
	SalespersonCZK   MoneyTable
	SalespersonCount CountTable
	SupplierCZK      MoneyTable
}

// Build folds a sequence of classified order records into a fresh report.
func Build(records []types.Record) *Report {
	r := &Report{
		ChannelCZK:       make(MoneyTable),
		ChannelEUR:       make(MoneyTable),
		ChannelCount:     make(CountTable),
		SalespersonCZK:   make(MoneyTable),
		SalespersonCount: make(CountTable),
		SupplierCZK:      make(MoneyTable),
	}
	for _, rec := range records {
		r.add(rec)
	}
	return r
}

func (r *Report) add(rec types.Record) {
	month := monthKey(rec.Date)
	channel := Key{Month: month, Dimension: string(rec.Channel)}

	if rec.Currency == types.EUR {
		r.ChannelEUR.Add(channel, rec.TotalEUR)
	} else {
		r.ChannelCZK.Add(channel, rec.TotalCZK)
	}
	r.ChannelCount[channel]++

	if rec.Channel == types.ChannelB2B {
		sp := Key{Month: month, Dimension: rec.Salesperson}
		r.SalespersonCZK.Add(sp, rec.TotalCZK)
		r.SalespersonCount[sp]++
	}

	r.SupplierCZK.Add(Key{Month: month, Dimension: string(rec.Supplier)}, rec.TotalCZK)
}

// Months returns the sorted union of months across the two channel money
// tables. MonthUnknown sorts after every YYYY-MM value.
func (r *Report) Months() []string {
	seen := make(map[string]bool)
	for k := range r.ChannelCZK {
		seen[k.Month] = true
	}
	for k := range r.ChannelEUR {
		seen[k.Month] = true
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// monthKey truncates an ISO date to its YYYY-MM prefix.
func monthKey(date string) string {
	if date == "" {
		return MonthUnknown
	}
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
