// =============================================================================
// Pohoda Analytics - Schema Path Tables
// =============================================================================
//
// Orders and invoices share one extractor; everything schema-specific lives
// in these path tables. A path is resolved with the pohoda package's
// descendant-search semantics, so only the distinguishing local names are
// spelled out. An empty path means the schema has no such field and the
// record keeps its zero value.
//
// =============================================================================

package extract

import "github.com/vitarsport/pohoda-analytics/internal/types"

// Schema describes where one document kind keeps its fields.
type Schema struct {
	Kind types.DocKind

	// Section tags.
	DocumentTag string
	HeaderTag   string
	SummaryTag  string
	DetailTag   string
	ItemTag     string

	// Header identity and dates.
	Number         string
	InternalNumber string
	LinkedNumber   string
	Date           string
	DateFrom       string
	DateTo         string
	DateTax        string
	DateDue        string

	// Header metadata.
	Centre              string
	ForeignCurrencyCode string
	PaymentType         string
	PriceLevel          string
	Accounting          string
	Note                string
	IntNote             string

	// Status flags.
	IsExecuted  string
	IsDelivered string
	Liquidation string

	// Item-level delivered quantity; only orders track it.
	ItemDelivered string

	// ClassifyByLinked classifies by the linked order number instead of the
	// document's own number. Invoices inherit their channel from the order
	// they bill.
	ClassifyByLinked bool
}

// OrderSchema reads the order export (ord namespace).
var OrderSchema = Schema{
	Kind: types.KindOrder,

	DocumentTag: "order",
	HeaderTag:   "orderHeader",
	SummaryTag:  "orderSummary",
	DetailTag:   "orderDetail",
	ItemTag:     "orderItem",

	Number:         "numberOrder",
	InternalNumber: "number/numberRequested",
	Date:           "date",
	DateFrom:       "dateFrom",
	DateTo:         "dateTo",

	Centre:              "centre/ids",
	ForeignCurrencyCode: "foreignCurrency/currency/ids",
	PaymentType:         "paymentType/ids",
	PriceLevel:          "priceLevel/ids",
	Note:                "note",
	IntNote:             "intNote",

	IsExecuted:  "isExecuted",
	IsDelivered: "isDelivered",

	ItemDelivered: "delivered",
}

// InvoiceSchema reads the invoice export (inv namespace).
var InvoiceSchema = Schema{
	Kind: types.KindInvoice,

	DocumentTag: "invoice",
	HeaderTag:   "invoiceHeader",
	SummaryTag:  "invoiceSummary",
	DetailTag:   "invoiceDetail",
	ItemTag:     "invoiceItem",

	Number:         "number/numberRequested",
	InternalNumber: "symVar",
	LinkedNumber:   "numberOrder",
	Date:           "date",
	DateTax:        "dateTax",
	DateDue:        "dateDue",

	Centre:              "centre/ids",
	ForeignCurrencyCode: "foreignCurrency/currency/ids",
	PaymentType:         "paymentType/ids",
	PriceLevel:          "priceLevel/ids",
	Accounting:          "accounting/ids",

	Liquidation: "liquidation/date",

	ClassifyByLinked: true,
}

// Shared partner-identity paths (typ namespace, identical in both schemas).
const (
	partnerAddressPath = "partnerIdentity/address"

	addrCompany = "company"
	addrName    = "name"
	addrCity    = "city"
	addrStreet  = "street"
	addrZip     = "zip"
	addrCountry = "country/ids"
	addrICO     = "ico"
	addrDIC     = "dic"
	addrEmail   = "email"
	addrMobile  = "mobilPhone"
	addrPhone   = "phone"
)

// Shared currency subtree paths (typ namespace).
const (
	homeCurrencyTag    = "homeCurrency"
	foreignCurrencyTag = "foreignCurrency"

	priceNone    = "priceNone"
	priceLow     = "priceLow"
	priceLowSum  = "priceLowSum"
	priceHigh    = "priceHigh"
	priceHighSum = "priceHighSum"
	priceSum     = "priceSum"
	unitPrice    = "unitPrice"
	priceNet     = "price"
)

// Shared item paths.
const (
	itemCode     = "code"
	itemText     = "text"
	itemQuantity = "quantity"
	itemUnit     = "unit"
	itemDiscount = "discountPercentage"
	itemEAN      = "stockItem/stockItem/EAN"
)
