package aggregate

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitarsport/pohoda-analytics/internal/types"
)

func czkOrder(number, date string, channel types.Channel, salesperson string, supplier types.Supplier, total string) types.Record {
	return types.Record{
		Kind:        types.KindOrder,
		Number:      number,
		Date:        date,
		Currency:    types.CZK,
		Channel:     channel,
		Salesperson: salesperson,
		Country:     types.CountryCZ,
		Supplier:    supplier,
		TotalCZK:    decimal.RequireFromString(total),
	}
}

func eurOrder(number, date string, channel types.Channel, supplier types.Supplier, totalEUR, totalCZK string) types.Record {
	return types.Record{
		Kind:     types.KindOrder,
		Number:   number,
		Date:     date,
		Currency: types.EUR,
		Channel:  channel,
		Country:  types.CountrySK,
		Supplier: supplier,
		TotalEUR: decimal.RequireFromString(totalEUR),
		TotalCZK: decimal.RequireFromString(totalCZK),
	}
}

func sampleRecords() []types.Record {
	return []types.Record{
		czkOrder("112001", "2025-01-03", types.ChannelEnervitCZ, "", types.SupplierEnervit, "1500"),
		czkOrder("112002", "2025-01-20", types.ChannelEnervitCZ, "", types.SupplierEnervit, "500.50"),
		czkOrder("500001", "2025-01-08", types.ChannelB2B, types.SalespersonKarolina, types.SupplierVitar, "10000"),
		czkOrder("500002", "2025-02-11", types.ChannelB2B, types.SalespersonHouse, types.SupplierVitar, "2000"),
		eurOrder("122001", "2025-01-15", types.ChannelEnervitSK, types.SupplierEnervit, "99.90", "2500"),
		eurOrder("222001", "2025-02-02", types.ChannelRoyalbaySK, types.SupplierAries, "40", "0"),
		czkOrder("999999", "", types.ChannelB2B, types.SalespersonStepan, types.SupplierVitar, "300"),
	}
}

func TestBuildRoutesByCurrency(t *testing.T) {
	r := Build(sampleRecords())

	assert.True(t, r.ChannelCZK.Amount("2025-01", string(types.ChannelEnervitCZ)).Equal(decimal.RequireFromString("2000.50")))
	assert.True(t, r.ChannelEUR.Amount("2025-01", string(types.ChannelEnervitSK)).Equal(decimal.RequireFromString("99.90")))

	// A EUR record never lands in the CZK channel table and vice versa.
	assert.True(t, r.ChannelCZK.Amount("2025-01", string(types.ChannelEnervitSK)).IsZero())
	assert.True(t, r.ChannelEUR.Amount("2025-01", string(types.ChannelEnervitCZ)).IsZero())

	// Counts see every record regardless of currency.
	assert.Equal(t, 2, r.ChannelCount.Count("2025-01", string(types.ChannelEnervitCZ)))
	assert.Equal(t, 1, r.ChannelCount.Count("2025-01", string(types.ChannelEnervitSK)))
	assert.Equal(t, 1, r.ChannelCount.Count("2025-02", string(types.ChannelRoyalbaySK)))
}

func TestBuildSalespersonTablesAreB2BOnly(t *testing.T) {
	r := Build(sampleRecords())

	assert.True(t, r.SalespersonCZK.Amount("2025-01", types.SalespersonKarolina).Equal(decimal.RequireFromString("10000")))
	assert.Equal(t, 1, r.SalespersonCount.Count("2025-02", types.SalespersonHouse))

	// E-shop records contribute nothing even though they have totals.
	total := decimal.Zero
	for k, v := range r.SalespersonCZK {
		require.NotEmpty(t, k.Dimension)
		total = total.Add(v)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("12300")))
}

func TestBuildSupplierTableUsesCZKForEveryRecord(t *testing.T) {
	r := Build(sampleRecords())

	assert.True(t, r.SupplierCZK.Amount("2025-01", string(types.SupplierEnervit)).Equal(decimal.RequireFromString("4500.50")))
	// EUR orders contribute their CZK reference amount, which may be zero.
	assert.True(t, r.SupplierCZK.Amount("2025-02", string(types.SupplierAries)).IsZero())
	assert.True(t, r.SupplierCZK.Amount("2025-02", string(types.SupplierVitar)).Equal(decimal.RequireFromString("2000")))
}

func TestMissingDateUsesUnknownMonth(t *testing.T) {
	r := Build(sampleRecords())

	assert.True(t, r.ChannelCZK.Amount(MonthUnknown, string(types.ChannelB2B)).Equal(decimal.RequireFromString("300")))
	assert.Equal(t, 1, r.ChannelCount.Count(MonthUnknown, string(types.ChannelB2B)))
}

func TestMonthsSortedUnionWithUnknownLast(t *testing.T) {
	r := Build(sampleRecords())
	assert.Equal(t, []string{"2025-01", "2025-02", MonthUnknown}, r.Months())
}

func TestBuildIsOrderIndependent(t *testing.T) {
	records := sampleRecords()
	want := Build(records)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]types.Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Build(shuffled)

		assertMoneyEqual(t, want.ChannelCZK, got.ChannelCZK)
		assertMoneyEqual(t, want.ChannelEUR, got.ChannelEUR)
		assertMoneyEqual(t, want.SalespersonCZK, got.SalespersonCZK)
		assertMoneyEqual(t, want.SupplierCZK, got.SupplierCZK)
		assert.Equal(t, want.ChannelCount, got.ChannelCount)
		assert.Equal(t, want.SalespersonCount, got.SalespersonCount)
	}
}

func TestBuildIsAdditive(t *testing.T) {
	records := sampleRecords()
	a, b := records[:3], records[3:]

	whole := Build(records)
	partA, partB := Build(a), Build(b)

	for key, total := range whole.ChannelCZK {
		sum := partA.ChannelCZK[key].Add(partB.ChannelCZK[key])
		assert.True(t, total.Equal(sum), "key %+v", key)
	}
	for key, total := range whole.SupplierCZK {
		sum := partA.SupplierCZK[key].Add(partB.SupplierCZK[key])
		assert.True(t, total.Equal(sum), "key %+v", key)
	}
	for key, count := range whole.ChannelCount {
		assert.Equal(t, count, partA.ChannelCount[key]+partB.ChannelCount[key], "key %+v", key)
	}
}

func assertMoneyEqual(t *testing.T, want, got MoneyTable) {
	t.Helper()
	require.Len(t, got, len(want))
	for k, v := range want {
		assert.True(t, v.Equal(got[k]), "key %+v want %s got %s", k, v, got[k])
	}
}
