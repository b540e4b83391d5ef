// =============================================================================
// Pohoda Analytics - Record Extractor
// =============================================================================
//
// The extractor turns one Pohoda XML export file into canonical records and
// line items. One generic walk handles both schemas; everything that differs
// between orders and invoices comes from the Schema path table.
//
// EXTRACTION PIPELINE (per document element):
//   1. Locate the header section; a document without one is skipped.
//   2. Resolve the currency (CZK unless the summary declares EUR).
//   3. Read identity, dates, customer block, payment and status metadata.
//   4. Resolve the four monetary totals (totals.go).
//   5. Classify the document and fold the result into the record.
//   6. Extract line items, dropping code-less pseudo-lines, and copy the
//      classification onto each.
//
// FAILURE SEMANTICS:
//   Malformed XML fails the whole file (reported, file contributes zero
//   records, run continues). A missing header skips the document silently.
//   A missing field is a default, never an error.
//
// =============================================================================

package extract

import (
	"fmt"
	"os"

	"github.com/vitarsport/pohoda-analytics/internal/classify"
	"github.com/vitarsport/pohoda-analytics/internal/pohoda"
	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// FileResult is the outcome of processing a single export file. Err is the
// only failure signal callers need: set for unreadable or malformed files,
// nil otherwise.
type FileResult struct {
	Path    string
	Records []types.Record
	Items   []types.LineItem

	// Skipped counts well-formed document elements without a header
	// section. These are placeholder documents, not errors.
	Skipped int

	Err error
}

// ParseFile reads and extracts every document in one export file. The file
// is read fully into memory; exports are small.
func ParseFile(s Schema, path string) FileResult {
	result := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", path, err)
		return result
	}

	root, err := pohoda.Parse(data)
	if err != nil {
		result.Err = fmt.Errorf("parse %s: %w", path, err)
		return result
	}

	for _, doc := range root.FindAll(s.DocumentTag) {
		rec, items := ParseDocument(s, doc)
		if rec == nil {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, *rec)
		result.Items = append(result.Items, items...)
	}
	return result
}

// ParseDocument extracts one order or invoice element. It returns a nil
// record when the document has no header section.
func ParseDocument(s Schema, doc *pohoda.Node) (*types.Record, []types.LineItem) {
	header := doc.Find(s.HeaderTag)
	if header == nil {
		return nil, nil
	}
	summary := doc.Find(s.SummaryTag)

	rec := &types.Record{
		Kind: s.Kind,

		Number:         header.Text(s.Number, ""),
		InternalNumber: header.Text(s.InternalNumber, ""),
		LinkedNumber:   header.Text(s.LinkedNumber, ""),

		Date:     header.Text(s.Date, ""),
		DateFrom: header.Text(s.DateFrom, ""),
		DateTo:   header.Text(s.DateTo, ""),
		DateTax:  header.Text(s.DateTax, ""),
		DateDue:  header.Text(s.DateDue, ""),

		Centre:      header.Text(s.Centre, ""),
		PaymentType: header.Text(s.PaymentType, ""),
		PriceLevel:  header.Text(s.PriceLevel, ""),
		Accounting:  header.Text(s.Accounting, ""),
		Note:        header.Text(s.Note, ""),
		IntNote:     header.Text(s.IntNote, ""),
	}

	// The currency decision is a single boolean per document: CZK unless the
	// summary's foreign-currency identifier says EUR. No third currency.
	rec.Currency = types.CZK
	if summary.Text(s.ForeignCurrencyCode, "") == string(types.EUR) {
		rec.Currency = types.EUR
	}

	extractPartner(header, rec)

	if s.IsExecuted != "" {
		rec.IsExecuted = header.Bool(s.IsExecuted)
	}
	if s.IsDelivered != "" {
		rec.IsDelivered = header.Bool(s.IsDelivered)
	}
	if s.Liquidation != "" {
		rec.LiquidationDate = header.Text(s.Liquidation, "")
		rec.IsPaid = rec.LiquidationDate != ""
	}

	resolveHeaderTotals(s, summary, rec)

	// Invoices classify by the order they bill; orders by their own number.
	classifyNumber := rec.Number
	if s.ClassifyByLinked {
		classifyNumber = rec.LinkedNumber
	}
	cls := classify.Classify(classifyNumber, rec.Currency, rec.Centre)
	rec.Channel = cls.Channel
	rec.Salesperson = cls.Salesperson
	rec.Country = cls.Country
	rec.Supplier = cls.Supplier

	return rec, extractItems(s, doc, rec)
}

// extractPartner reads the customer identity block. Always attempted; every
// field degrades to an empty string when absent.
func extractPartner(header *pohoda.Node, rec *types.Record) {
	address := header.Find(partnerAddressPath)
	if address == nil {
		return
	}
	rec.Company = address.Text(addrCompany, "")
	rec.Name = address.Text(addrName, "")
	rec.City = address.Text(addrCity, "")
	rec.Street = address.Text(addrStreet, "")
	rec.Zip = address.Text(addrZip, "")
	rec.CustomerCountry = address.Text(addrCountry, "")
	rec.ICO = address.Text(addrICO, "")
	rec.DIC = address.Text(addrDIC, "")
	rec.Email = address.Text(addrEmail, "")
	rec.Phone = address.Text(addrMobile, "")
	if rec.Phone == "" {
		rec.Phone = address.Text(addrPhone, "")
	}
}

// extractItems walks the detail section. Items without a product code are
// shipping/discount pseudo-lines and never materialize.
func extractItems(s Schema, doc *pohoda.Node, rec *types.Record) []types.LineItem {
	detail := doc.Find(s.DetailTag)
	if detail == nil {
		return nil
	}

	var items []types.LineItem
	for _, el := range detail.FindAll(s.ItemTag) {
		code := el.Text(itemCode, "")
		if code == "" {
			continue
		}

		it := types.LineItem{
			DocumentNumber: rec.Number,
			LinkedNumber:   rec.LinkedNumber,
			Date:           rec.Date,
			Company:        rec.Company,
			Currency:       rec.Currency,

			Channel:     rec.Channel,
			Salesperson: rec.Salesperson,
			Country:     rec.Country,
			Supplier:    rec.Supplier,

			ProductCode:     code,
			ProductName:     el.Text(itemText, ""),
			EAN:             el.Text(itemEAN, ""),
			Quantity:        el.Decimal(itemQuantity),
			Unit:            el.Text(itemUnit, ""),
			DiscountPercent: el.Decimal(itemDiscount),
		}
		if s.ItemDelivered != "" {
			it.Delivered = el.Decimal(s.ItemDelivered)
		}
		resolveItemTotals(s, el, rec.Currency, &it)

		items = append(items, it)
	}
	return items
}
