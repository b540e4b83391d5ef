// =============================================================================
// Pohoda Analytics - Shared Types
// =============================================================================
//
// This package contains the canonical record types and the classification
// taxonomy shared across multiple modules to avoid import cycles. Types
// defined here are used by:
//   - classify
//   - extract
//   - aggregate
//   - export
//
// =============================================================================

package types

import "github.com/shopspring/decimal"

// =============================================================================
// TAXONOMY
// =============================================================================

// DocKind distinguishes the two Pohoda export schemas.
type DocKind string

const (
	KindOrder   DocKind = "order"
	KindInvoice DocKind = "invoice"
)

// Currency is the declared currency of a document. Exactly one of the two
// values is assigned per document; there is no third currency and no
// conversion between the two.
type Currency string

const (
	CZK Currency = "CZK"
	EUR Currency = "EUR"
)

// Channel is the sales-channel taxonomy value assigned by classification.
type Channel string

const (
	ChannelEnervitCZ  Channel = "ESHOP_ENERVIT_CZ"
	ChannelEnervitSK  Channel = "ESHOP_ENERVIT_SK"
	ChannelRoyalbayCZ Channel = "ESHOP_ROYALBAY_CZ"
	ChannelRoyalbaySK Channel = "ESHOP_ROYALBAY_SK"
	ChannelB2B        Channel = "B2B"
)

// Supplier identifies which supplier's goods a document moves.
type Supplier string

const (
	SupplierEnervit Supplier = "ENERVIT"
	SupplierAries   Supplier = "ARIES"
	SupplierVitar   Supplier = "VITAR"
)

// B2B salesperson attribution, derived from the centre code on the header.
// SalespersonHouse is the fallback when no centre code is present.
const (
	SalespersonKarolina = "Karolina"
	SalespersonJirka    = "Jirka"
	SalespersonStepan   = "Štěpán"
	SalespersonHouse    = "VITAR Sport"
)

// Country is the market a document belongs to.
type Country string

const (
	CountryCZ Country = "CZ"
	CountrySK Country = "SK"
)

// PriceLevelSponsoring marks invoices that represent sponsorship
// arrangements rather than ordinary commerce. They are exported separately
// and excluded from the regular invoice payloads.
const PriceLevelSponsoring = "Sponzoring"

// =============================================================================
// RECORD
// =============================================================================

// Record is the flattened header of one order or invoice. It is created once
// per parsed document and never mutated or merged afterwards.
//
// The four totals follow the currency-exclusivity rule: the pair that does
// not match Currency is zero, with one deliberate exception: EUR documents
// carry a CZK gross equivalent read from the home-currency summary, while
// their CZK net slot stays zero.
type Record struct {
	Kind DocKind

	// Number is the external document number: the order number for orders,
	// the requested invoice number for invoices. It may carry leading zeros
	// and is compared as a string throughout.
	Number string

	// InternalNumber is the requested internal number for orders and the
	// variable symbol for invoices.
	InternalNumber string

	// LinkedNumber is the order number an invoice references. Empty for
	// orders. Invoices are classified by this number, not by their own.
	LinkedNumber string

	Date     string // issue date, ISO
	DateFrom string // orders: delivery window start
	DateTo   string // orders: delivery window end
	DateTax  string // invoices: taxable supply date
	DateDue  string // invoices: due date

	Currency Currency
	Centre   string // free-text origin code ("Kdo řeší"), classifier input

	// Customer identity from the partner block.
	Company         string
	Name            string
	Street          string
	City            string
	Zip             string
	CustomerCountry string
	ICO             string
	DIC             string
	Email           string
	Phone           string

	PaymentType string
	PriceLevel  string
	Accounting  string // invoices only
	Note        string // orders only
	IntNote     string // orders only

	IsExecuted      bool   // orders
	IsDelivered     bool   // orders
	IsPaid          bool   // invoices: a liquidation date exists
	LiquidationDate string // invoices

	// Classification result, folded in during extraction.
	Channel     Channel
	Salesperson string // empty for e-shop channels
	Country     Country
	Supplier    Supplier

	TotalCZK    decimal.Decimal
	TotalCZKNet decimal.Decimal
	TotalEUR    decimal.Decimal
	TotalEURNet decimal.Decimal
}

// =============================================================================
// LINE ITEM
// =============================================================================

// LineItem is one inventory movement belonging to a Record. Items without a
// product code (shipping, discounts, fee pseudo-lines) are dropped during
// extraction and never materialized. Line items are value objects owned by
// the extraction pass that produced them.
type LineItem struct {
	// DocumentNumber is the parent Record's Number.
	DocumentNumber string

	// LinkedNumber mirrors the parent's LinkedNumber (invoice items only).
	LinkedNumber string

	Date     string
	Company  string
	Currency Currency

	// Classification copied unchanged from the parent Record.
	Channel     Channel
	Salesperson string
	Country     Country
	Supplier    Supplier

	ProductCode string
	ProductName string
	EAN         string
	Quantity    decimal.Decimal
	Delivered   decimal.Decimal // orders only, zero for invoices
	Unit        string

	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal

	TotalCZK    decimal.Decimal
	TotalCZKNet decimal.Decimal
	TotalEUR    decimal.Decimal
	TotalEURNet decimal.Decimal
}

// =============================================================================
// SPONSORING PARTITION
// =============================================================================

// Partition is one side of the regular/sponsoring invoice split.
type Partition struct {
	Records []Record
	Items   []LineItem
}

// SplitByPriceLevel partitions invoice records by price level: records whose
// PriceLevel equals level form the second partition, everything else the
// first. Items follow their parent record by document number. The split does
// not apply to orders; callers pass invoices only.
func SplitByPriceLevel(records []Record, items []LineItem, level string) (regular, matched Partition) {
	matchedNumbers := make(map[string]bool)
	for _, r := range records {
		if r.PriceLevel == level {
			matched.Records = append(matched.Records, r)
			matchedNumbers[r.Number] = true
		} else {
			regular.Records = append(regular.Records, r)
		}
	}
	for _, it := range items {
		if matchedNumbers[it.DocumentNumber] {
			matched.Items = append(matched.Items, it)
		} else {
			regular.Items = append(regular.Items, it)
		}
	}
	return regular, matched
}
