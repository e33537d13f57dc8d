// Package sheetcodec maps entities to and from the tabular rows the
// document store keeps. Encoding always emits the canonical header
// ordering; decoding resolves columns by header name so reordered, missing
// or extra columns in a drifted sheet are tolerated rather than fatal.
package sheetcodec

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"importafacil/internal/domain/entities"
	"importafacil/internal/domain/finance"
	"importafacil/internal/numeric"
)

// Tab names in the remote document store.
const (
	TabClients  = "clients"
	TabInvoices = "invoices"
	TabExpenses = "expenses"
	TabSettings = "settings"
)

const expenseDateLayout = "2006-01-02"

// Canonical column orderings. Writing these headers back on every overwrite
// is what heals a drifted sheet.
var (
	ClientHeaders = []string{"id", "name", "phone", "email", "address", "notes"}
	InvoiceHeaders = []string{
		"id", "clientId", "createdAt", "updatedAt", "status", "exchangeRate",
		"pricePerKg", "items", "logisticsCost", "amountPaid",
		"totalProductCost", "totalProductSale", "totalCommissions", "grandTotalUsd",
	}
	ExpenseHeaders  = []string{"id", "description", "amount", "category", "date"}
	SettingsHeaders = []string{"exchangeRate", "pricePerKg", "formulaVersion"}
)

// row resolves cells by header name, blank when the column is absent.
type row struct {
	index map[string]int
	cells []string
}

func newRow(headers, cells []string) row {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return row{index: idx, cells: cells}
}

func (r row) get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r row) num(name string) float64 {
	return numeric.SafeNumber(r.get(name))
}

func money(v float64) string {
	return strconv.FormatFloat(finance.Round2(v), 'f', -1, 64)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// EncodeClients renders one row per client in canonical column order.
func EncodeClients(cs []entities.Client) [][]string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.ID, c.Name, c.Phone, c.Email, c.Address, c.Notes})
	}
	return rows
}

func DecodeClients(headers []string, rows [][]string) []entities.Client {
	out := make([]entities.Client, 0, len(rows))
	for _, cells := range rows {
		r := newRow(headers, cells)
		if r.get("id") == "" {
			continue
		}
		out = append(out, entities.Client{
			ID:      r.get("id"),
			Name:    r.get("name"),
			Phone:   r.get("phone"),
			Email:   r.get("email"),
			Address: r.get("address"),
			Notes:   r.get("notes"),
		})
	}
	return out
}

// EncodeInvoices renders one row per invoice; line items are JSON-encoded
// into a single cell.
func EncodeInvoices(invs []entities.Invoice) [][]string {
	rows := make([][]string, 0, len(invs))
	for _, inv := range invs {
		items, _ := json.Marshal(inv.Items)
		rows = append(rows, []string{
			inv.ID,
			inv.ClientID,
			timestamp(inv.CreatedAt),
			timestamp(inv.UpdatedAt),
			string(inv.Status),
			money(inv.ExchangeRate),
			money(inv.PricePerKg),
			string(items),
			money(inv.LogisticsCost),
			money(inv.AmountPaid),
			money(inv.TotalProductCost),
			money(inv.TotalProductSale),
			money(inv.TotalCommissions),
			money(inv.GrandTotalUSD),
		})
	}
	return rows
}

func DecodeInvoices(headers []string, rows [][]string) []entities.Invoice {
	out := make([]entities.Invoice, 0, len(rows))
	for _, cells := range rows {
		r := newRow(headers, cells)
		if r.get("id") == "" {
			continue
		}
		out = append(out, entities.Invoice{
			ID:           r.get("id"),
			ClientID:     r.get("clientId"),
			CreatedAt:    parseTimestamp(r.get("createdAt")),
			UpdatedAt:    parseTimestamp(r.get("updatedAt")),
			Status:       entities.InvoiceStatus(r.get("status")),
			ExchangeRate: r.num("exchangeRate"),
			PricePerKg:   r.num("pricePerKg"),
			Items:        decodeItems(r.get("items")),
			AmountPaid:   r.num("amountPaid"),
			// Derived totals are left for the formula engine; the persisted
			// cells are display copies only.
		})
	}
	return out
}

// decodeItems reads the JSON items cell defensively: the sheet engine may
// have stringified numbers or blanked fields inside the payload.
func decodeItems(cell string) []entities.ProductItem {
	if cell == "" {
		return nil
	}
	var raw []map[string]any
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		return nil
	}
	items := make([]entities.ProductItem, 0, len(raw))
	for _, m := range raw {
		items = append(items, entities.ProductItem{
			ID:             str(m["id"]),
			Name:           str(m["name"]),
			Quantity:       numeric.SafeInt(m["quantity"]),
			Weight:         numeric.SafeNumber(m["weight"]),
			WeightUnit:     entities.WeightUnit(str(m["weightUnit"])),
			Platform:       entities.Platform(str(m["platform"])),
			TrackingNumber: str(m["trackingNumber"]),
			OriginalPrice:  numeric.SafeNumber(m["originalPrice"]),
			Taxes:          numeric.SafeNumber(m["taxes"]),
			Discounts:      numeric.SafeNumber(m["discounts"]),
			FinalPrice:     numeric.SafeNumber(m["finalPrice"]),
			Commission:     numeric.SafeNumber(m["commission"]),
			IsElectronics:  boolish(m["isElectronics"]),
		})
	}
	return items
}

func EncodeExpenses(es []entities.Expense) [][]string {
	rows := make([][]string, 0, len(es))
	for _, e := range es {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.UTC().Format(expenseDateLayout)
		}
		rows = append(rows, []string{e.ID, e.Description, money(e.Amount), string(e.Category), date})
	}
	return rows
}

func DecodeExpenses(headers []string, rows [][]string) []entities.Expense {
	out := make([]entities.Expense, 0, len(rows))
	for _, cells := range rows {
		r := newRow(headers, cells)
		if r.get("id") == "" {
			continue
		}
		date, _ := time.Parse(expenseDateLayout, r.get("date"))
		category := entities.ExpenseCategory(r.get("category"))
		if category == "" {
			category = entities.ExpenseCategoryOtro
		}
		out = append(out, entities.Expense{
			ID:          r.get("id"),
			Description: r.get("description"),
			Amount:      r.num("amount"),
			Category:    category,
			Date:        date,
		})
	}
	return out
}

// EncodeSettings renders the single settings row.
func EncodeSettings(s entities.Settings) [][]string {
	return [][]string{{
		money(s.ExchangeRate),
		money(s.PricePerKg),
		strconv.Itoa(s.Version()),
	}}
}

// DecodeSettings reads the first settings row, falling back to defaults for
// an empty tab or blanked cells.
func DecodeSettings(headers []string, rows [][]string) entities.Settings {
	s := entities.DefaultSettings()
	if len(rows) == 0 {
		return s
	}
	r := newRow(headers, rows[0])
	if v := r.num("exchangeRate"); v > 0 {
		s.ExchangeRate = v
	}
	if v := r.num("pricePerKg"); v > 0 {
		s.PricePerKg = v
	}
	if v := numeric.SafeInt(r.get("formulaVersion")); v != 0 {
		s.FormulaVersion = v
	}
	return s
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func boolish(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	case float64:
		return b != 0
	default:
		return false
	}
}
