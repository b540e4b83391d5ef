// =============================================================================
// Pohoda Analytics - Channel Classifier
// =============================================================================
//
// Classification maps a document to its sales channel, salesperson, country
// and supplier from three header fields: the document number, the resolved
// currency, and the free-text centre code. It is a pure function and total
// over its inputs: every document classifies, there is no "unknown" channel.
//
// NUMBER PREFIXES:
//   112xxx = ESHOP_ENERVIT_CZ
//   122xxx = ESHOP_ENERVIT_SK
//   222xxx = ESHOP_ROYALBAY (CZ when CZK, SK when EUR)
//   others = B2B, subdivided by the centre code
//
// Prefixes are matched on the string form of the number, in the order above,
// first match wins. String matching tolerates leading zeros.
//
// =============================================================================

package classify

import (
	"strings"

	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// Result is the classification 4-tuple folded into a Record. Salesperson is
// empty for the e-shop channels; B2B always carries one.
type Result struct {
	Channel     types.Channel
	Salesperson string
	Country     types.Country
	Supplier    types.Supplier
}

// Classify assigns a sales channel to a document number. For invoices the
// caller passes the linked order number, so both document kinds classify
// through the same prefix table.
func Classify(number string, currency types.Currency, centre string) Result {
	switch {
	case strings.HasPrefix(number, "112"):
		return Result{
			Channel:  types.ChannelEnervitCZ,
			Country:  types.CountryCZ,
			Supplier: types.SupplierEnervit,
		}
	case strings.HasPrefix(number, "122"):
		return Result{
			Channel:  types.ChannelEnervitSK,
			Country:  types.CountrySK,
			Supplier: types.SupplierEnervit,
		}
	case strings.HasPrefix(number, "222"):
		// ROYALBAY sells to both markets under one number range; the
		// currency decides the market.
		if currency == types.EUR {
			return Result{
				Channel:  types.ChannelRoyalbaySK,
				Country:  types.CountrySK,
				Supplier: types.SupplierAries,
			}
		}
		return Result{
			Channel:  types.ChannelRoyalbayCZ,
			Country:  types.CountryCZ,
			Supplier: types.SupplierAries,
		}
	}

	country := types.CountryCZ
	if currency == types.EUR {
		country = types.CountrySK
	}
	return Result{
		Channel:     types.ChannelB2B,
		Salesperson: salespersonFromCentre(centre),
		Country:     country,
		Supplier:    types.SupplierVitar,
	}
}

// salespersonFromCentre resolves B2B attribution from the centre code,
// case-insensitively. Unrecognized non-empty codes belong to Štěpán; an
// empty code falls back to the house account.
func salespersonFromCentre(centre string) string {
	switch strings.ToUpper(strings.TrimSpace(centre)) {
	case "KPR":
		return types.SalespersonKarolina
	case "JGO":
		return types.SalespersonJirka
	case "":
		return types.SalespersonHouse
	default: // OJO and any other known code
		return types.SalespersonStepan
	}
}
