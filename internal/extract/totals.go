// =============================================================================
// Pohoda Analytics - Currency & Total Resolver
// =============================================================================
//
// Pohoda summaries split every amount into up to three VAT-rate buckets
// (exempt "none", low rate, high rate) and duplicate the whole block per
// currency (homeCurrency vs foreignCurrency). Which subtree feeds which of
// the four record totals depends on the document's declared currency. This
// is the most error-prone piece of the pipeline; the rules below reproduce
// the accounting system's export conventions field for field, including two
// deliberate oddities:
//
//   - EUR documents fill TotalCZK from the home-currency subtree as a
//     reference amount, but never fill TotalCZKNet.
//   - CZK invoices count the exempt bucket in both the gross and the net
//     total. Downstream reports depend on the resulting numbers, so the
//     duplication is kept.
//
// =============================================================================

package extract

import (
	"github.com/vitarsport/pohoda-analytics/internal/pohoda"
	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// resolveHeaderTotals fills the record's four totals from the summary
// section. A missing summary leaves all totals at zero.
func resolveHeaderTotals(s Schema, summary *pohoda.Node, rec *types.Record) {
	if summary == nil {
		return
	}

	if rec.Currency == types.EUR {
		if foreign := summary.Find(foreignCurrencyTag); foreign != nil {
			rec.TotalEUR = foreign.Decimal(priceSum)
			rec.TotalEURNet = foreign.Decimal(priceLow).Add(foreign.Decimal(priceHigh))
		}
		// CZK reference amount; the net slot deliberately stays zero.
		if home := summary.Find(homeCurrencyTag); home != nil {
			rec.TotalCZK = home.Decimal(priceNone).
				Add(home.Decimal(priceLowSum)).
				Add(home.Decimal(priceHighSum))
		}
		return
	}

	home := summary.Find(homeCurrencyTag)
	if home == nil {
		return
	}
	switch s.Kind {
	case types.KindInvoice:
		none := home.Decimal(priceNone)
		rec.TotalCZK = none.
			Add(home.Decimal(priceLowSum)).
			Add(home.Decimal(priceHighSum))
		// The exempt bucket is added again here; see the file comment.
		rec.TotalCZKNet = none.
			Add(home.Decimal(priceLow)).
			Add(home.Decimal(priceHigh))
	default:
		rec.TotalCZK = home.Decimal(priceLowSum).Add(home.Decimal(priceHighSum))
		rec.TotalCZKNet = home.Decimal(priceLow).Add(home.Decimal(priceHigh))
	}
}

// resolveItemTotals fills an item's unit price and totals. Items carry a
// single populated currency subtree; the slot an amount lands in is decided
// by the parent document's currency, not by which subtree happens to be
// present.
func resolveItemTotals(s Schema, item *pohoda.Node, currency types.Currency, it *types.LineItem) {
	home := item.Find(homeCurrencyTag)
	if home != nil {
		it.UnitPrice = home.Decimal(unitPrice)
		if currency != types.EUR {
			it.TotalCZK = home.Decimal(priceSum)
			it.TotalCZKNet = home.Decimal(priceNet)
		}
	}

	// Orders export item prices in the home currency only; invoices carry a
	// foreign subtree that feeds the EUR slots on EUR documents.
	if s.Kind != types.KindInvoice {
		return
	}
	foreign := item.Find(foreignCurrencyTag)
	if foreign != nil && currency == types.EUR {
		it.TotalEUR = foreign.Decimal(priceSum)
		it.TotalEURNet = foreign.Decimal(priceNet)
	}
}
