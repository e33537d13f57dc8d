package entities

import "time"

// InvoiceStatus is the payment lifecycle of an invoice.
//
// Domain notes:
//   - Transitions are bidirectional: reducing amountPaid on a Paid invoice
//     legally moves it back to Partial.
//   - Delivered is sticky with respect to amount edits; only an explicit
//     status change leaves it.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusDelivered InvoiceStatus = "delivered"
)

// Platform is the sourcing marketplace of a line item.
type Platform string

const (
	PlatformShein      Platform = "Shein"
	PlatformAmazon     Platform = "Amazon"
	PlatformTemu       Platform = "Temu"
	PlatformAliExpress Platform = "AliExpress"
	PlatformAlibaba    Platform = "Alibaba"
	PlatformOther      Platform = "Other"
)

// WeightUnit is the unit a line item weight was entered in.
type WeightUnit string

const (
	WeightUnitLb WeightUnit = "lb"
	WeightUnitKg WeightUnit = "kg"
)

// ProductItem is a single invoice line. Items are embedded in their invoice
// (owned exclusively, insertion order is display order), never referenced.
//
// Taxes and Discounts arrived in a later schema version; rows migrated from
// older sheets carry them as zero, in which case FinalPrice keeps whatever
// the operator typed.
type ProductItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	Weight         float64    `json:"weight"`
	WeightUnit     WeightUnit `json:"weightUnit"`
	Platform       Platform   `json:"platform"`
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	OriginalPrice  float64    `json:"originalPrice"`
	Taxes          float64    `json:"taxes"`
	Discounts      float64    `json:"discounts"`
	FinalPrice     float64    `json:"finalPrice"`
	Commission     float64    `json:"commission"`
	IsElectronics  bool       `json:"isElectronics"`
}

// Invoice is a multi-item invoice with a per-invoice exchange-rate snapshot.
//
// Storage model (sheet tab "invoices"):
//   - one row per invoice, items JSON-encoded into a single cell
//   - LogisticsCost and the TotalXxx/GrandTotalUSD fields are persisted for
//     the benefit of people reading the sheet directly, but they are a cache
//     of the formula engine output: every read and every write recomputes
//     them, persisted values are never trusted.
type Invoice struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"clientId"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Status       InvoiceStatus `json:"status"`
	ExchangeRate float64       `json:"exchangeRate"`
	// PricePerKg snapshots the logistics rate at invoice time; zero means
	// fall back to the global setting.
	PricePerKg float64       `json:"pricePerKg,omitempty"`
	Items      []ProductItem `json:"items"`

	LogisticsCost float64 `json:"logisticsCost"`
	AmountPaid    float64 `json:"amountPaid"`

	TotalProductCost float64 `json:"totalProductCost"`
	TotalProductSale float64 `json:"totalProductSale"`
	TotalCommissions float64 `json:"totalCommissions"`
	GrandTotalUSD    float64 `json:"grandTotalUsd"`
}
