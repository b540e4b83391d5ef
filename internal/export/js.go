// =============================================================================
// Pohoda Analytics - JS Data File Exporter
// =============================================================================
//
// The web dashboard consumes plain JS files, each declaring a single const
// with a JSON array literal. Every numeric total is coerced to a plain
// float64 at this boundary; the core keeps decimals. Salesperson is null
// (not "") for e-shop records, matching what the dashboard expects.
//
// FILES:
//   data.js / items.js                       orders and their items
//   invoices_data.js / invoices_items.js     regular invoices
//   sponsoring_data.js / sponsoring_items.js Sponzoring invoices
//
// =============================================================================

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitarsport/pohoda-analytics/internal/types"
)

// orderPayload mirrors the dashboard's order row shape.
type orderPayload struct {
	OrderNumber     string  `json:"order_number"`
	InternalNumber  string  `json:"internal_number"`
	Date            string  `json:"date"`
	Company         string  `json:"company"`
	CustomerName    string  `json:"customer_name"`
	City            string  `json:"city"`
	Zip             string  `json:"zip"`
	CustomerCountry string  `json:"customer_country"`
	ICO             string  `json:"ico"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Currency        string  `json:"currency"`
	Centre          string  `json:"centre"`
	Channel         string  `json:"channel"`
	Salesperson     *string `json:"salesperson"`
	Country         string  `json:"country"`
	Supplier        string  `json:"supplier"`
	PaymentType     string  `json:"payment_type"`
	PriceLevel      string  `json:"price_level"`
	IsExecuted      bool    `json:"is_executed"`
	IsDelivered     bool    `json:"is_delivered"`
	TotalCZK        float64 `json:"total_czk"`
	TotalCZKNet     float64 `json:"total_czk_bez_dph"`
	TotalEUR        float64 `json:"total_eur"`
	TotalEURNet     float64 `json:"total_eur_bez_dph"`
}

// invoicePayload mirrors the dashboard's invoice row shape.
type invoicePayload struct {
	InvoiceNumber   string  `json:"invoice_number"`
	OrderNumber     string  `json:"order_number"`
	Date            string  `json:"date"`
	DateDue         string  `json:"date_due"`
	Company         string  `json:"company"`
	CustomerName    string  `json:"customer_name"`
	City            string  `json:"city"`
	Zip             string  `json:"zip"`
	CustomerCountry string  `json:"customer_country"`
	ICO             string  `json:"ico"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Currency        string  `json:"currency"`
	Centre          string  `json:"centre"`
	Channel         string  `json:"channel"`
	Salesperson     *string `json:"salesperson"`
	Country         string  `json:"country"`
	Supplier        string  `json:"supplier"`
	PaymentType     string  `json:"payment_type"`
	PriceLevel      string  `json:"price_level"`
	IsPaid          bool    `json:"is_paid"`
	LiquidationDate string  `json:"liquidation_date"`
	TotalCZK        float64 `json:"total_czk"`
	TotalCZKNet     float64 `json:"total_czk_bez_dph"`
	TotalEUR        float64 `json:"total_eur"`
	TotalEURNet     float64 `json:"total_eur_bez_dph"`
}

// itemPayload mirrors the dashboard's item row shape. Orders include the
// delivered quantity; invoice items leave it out.
type itemPayload struct {
	InvoiceNumber   string   `json:"invoice_number,omitempty"`
	OrderNumber     string   `json:"order_number"`
	Date            string   `json:"date"`
	Company         string   `json:"company"`
	Currency        string   `json:"currency"`
	Channel         string   `json:"channel"`
	Salesperson     *string  `json:"salesperson"`
	Country         string   `json:"country"`
	Supplier        string   `json:"supplier"`
	ProductCode     string   `json:"product_code"`
	ProductName     string   `json:"product_name"`
	EAN             string   `json:"ean"`
	Quantity        float64  `json:"quantity"`
	Delivered       *float64 `json:"delivered,omitempty"`
	Unit            string   `json:"unit"`
	UnitPrice       float64  `json:"unit_price"`
	DiscountPercent float64  `json:"discount_percent"`
	TotalCZK        float64  `json:"total_czk"`
	TotalCZKNet     float64  `json:"total_czk_bez_dph"`
	TotalEUR        float64  `json:"total_eur"`
	TotalEURNet     float64  `json:"total_eur_bez_dph"`
}

// WriteOrdersJS writes data.js and items.js into dir.
func WriteOrdersJS(dir string, records []types.Record, items []types.LineItem) error {
	payload := make([]orderPayload, 0, len(records))
	for _, r := range records {
		payload = append(payload, orderPayload{
			OrderNumber:     r.Number,
			InternalNumber:  r.InternalNumber,
			Date:            r.Date,
			Company:         r.Company,
			CustomerName:    r.Name,
			City:            r.City,
			Zip:             r.Zip,
			CustomerCountry: r.CustomerCountry,
			ICO:             r.ICO,
			Email:           r.Email,
			Phone:           r.Phone,
			Currency:        string(r.Currency),
			Centre:          r.Centre,
			Channel:         string(r.Channel),
			Salesperson:     nullable(r.Salesperson),
			Country:         string(r.Country),
			Supplier:        string(r.Supplier),
			PaymentType:     r.PaymentType,
			PriceLevel:      r.PriceLevel,
			IsExecuted:      r.IsExecuted,
			IsDelivered:     r.IsDelivered,
			TotalCZK:        r.TotalCZK.InexactFloat64(),
			TotalCZKNet:     r.TotalCZKNet.InexactFloat64(),
			TotalEUR:        r.TotalEUR.InexactFloat64(),
			TotalEURNet:     r.TotalEURNet.InexactFloat64(),
		})
	}
	if err := writeJS(filepath.Join(dir, "data.js"), "ordersData", "Orders Data", payload); err != nil {
		return err
	}
	return writeJS(filepath.Join(dir, "items.js"), "itemsData", "Order Items Data", itemPayloads(items, true))
}

// WriteInvoicesJS writes the regular and sponsoring invoice payload pairs
// into dir.
func WriteInvoicesJS(dir string, regular, sponsoring types.Partition) error {
	files := []struct {
		name      string
		constName string
		title     string
		payload   any
	}{
		{"invoices_data.js", "invoicesData", "Invoices Data (excluding Sponzoring)", invoicePayloads(regular.Records)},
		{"invoices_items.js", "invoiceItemsData", "Invoice Items Data (excluding Sponzoring)", itemPayloads(regular.Items, false)},
		{"sponsoring_data.js", "sponsoringData", "Sponsoring Invoices Data", invoicePayloads(sponsoring.Records)},
		{"sponsoring_items.js", "sponsoringItemsData", "Sponsoring Items Data", itemPayloads(sponsoring.Items, false)},
	}
	for _, f := range files {
		if err := writeJS(filepath.Join(dir, f.name), f.constName, f.title, f.payload); err != nil {
			return err
		}
	}
	return nil
}

func invoicePayloads(records []types.Record) []invoicePayload {
	payload := make([]invoicePayload, 0, len(records))
	for _, r := range records {
		payload = append(payload, invoicePayload{
			InvoiceNumber:   r.Number,
			OrderNumber:     r.LinkedNumber,
			Date:            r.Date,
			DateDue:         r.DateDue,
			Company:         r.Company,
			CustomerName:    r.Name,
			City:            r.City,
			Zip:             r.Zip,
			CustomerCountry: r.CustomerCountry,
			ICO:             r.ICO,
			Email:           r.Email,
			Phone:           r.Phone,
			Currency:        string(r.Currency),
			Centre:          r.Centre,
			Channel:         string(r.Channel),
			Salesperson:     nullable(r.Salesperson),
			Country:         string(r.Country),
			Supplier:        string(r.Supplier),
			PaymentType:     r.PaymentType,
			PriceLevel:      r.PriceLevel,
			IsPaid:          r.IsPaid,
			LiquidationDate: r.LiquidationDate,
			TotalCZK:        r.TotalCZK.InexactFloat64(),
			TotalCZKNet:     r.TotalCZKNet.InexactFloat64(),
			TotalEUR:        r.TotalEUR.InexactFloat64(),
			TotalEURNet:     r.TotalEURNet.InexactFloat64(),
		})
	}
	return payload
}

func itemPayloads(items []types.LineItem, withDelivered bool) []itemPayload {
	payload := make([]itemPayload, 0, len(items))
	for _, it := range items {
		p := itemPayload{
			OrderNumber:     it.DocumentNumber,
			Date:            it.Date,
			Company:         it.Company,
			Currency:        string(it.Currency),
			Channel:         string(it.Channel),
			Salesperson:     nullable(it.Salesperson),
			Country:         string(it.Country),
			Supplier:        string(it.Supplier),
			ProductCode:     it.ProductCode,
			ProductName:     it.ProductName,
			EAN:             it.EAN,
			Quantity:        it.Quantity.InexactFloat64(),
			Unit:            it.Unit,
			UnitPrice:       it.UnitPrice.InexactFloat64(),
			DiscountPercent: it.DiscountPercent.InexactFloat64(),
			TotalCZK:        it.TotalCZK.InexactFloat64(),
			TotalCZKNet:     it.TotalCZKNet.InexactFloat64(),
			TotalEUR:        it.TotalEUR.InexactFloat64(),
			TotalEURNet:     it.TotalEURNet.InexactFloat64(),
		}
		if withDelivered {
			delivered := it.Delivered.InexactFloat64()
			p.Delivered = &delivered
		} else {
			// Invoice items carry the invoice number and the linked order
			// number, in that order.
			p.InvoiceNumber = it.DocumentNumber
			p.OrderNumber = it.LinkedNumber
		}
		payload = append(payload, p)
	}
	return payload
}

// writeJS renders one "const name = [...];" data file.
func writeJS(path, constName, title string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", constName, err)
	}
	content := fmt.Sprintf("// VITAR Sport Analytics - %s\n// Generated from Pohoda XML exports\n\nconst %s = %s;\n",
		title, constName, data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// nullable maps an empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
