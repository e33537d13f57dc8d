package finance

import (
	"importafacil/internal/domain/entities"
	"importafacil/internal/numeric"
)

// ApplyStatus sets a new status and applies the forced amount writes that
// come with it: Paid and Delivered collect the full grand total, Pending
// zeroes the collected amount. Partial and Draft leave the amount alone;
// re-entering Draft in particular does not re-zero anything.
func ApplyStatus(inv *entities.Invoice, status entities.InvoiceStatus) {
	inv.Status = status
	switch status {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusDelivered:
		inv.AmountPaid = inv.GrandTotalUSD
	case entities.InvoiceStatusPending:
		inv.AmountPaid = 0
	}
}

// ApplyAmountPaid records a collected amount and derives the status from it,
// unless the invoice is a Draft (not yet issued) or Delivered (sticky: the
// amount changes but the status stays put).
func ApplyAmountPaid(inv *entities.Invoice, amount float64) {
	inv.AmountPaid = numeric.SafeNumber(amount)
	switch inv.Status {
	case entities.InvoiceStatusDraft, entities.InvoiceStatusDelivered:
		return
	}
	switch {
	case inv.AmountPaid == 0:
		inv.Status = entities.InvoiceStatusPending
	case inv.AmountPaid < inv.GrandTotalUSD:
		inv.Status = entities.InvoiceStatusPartial
	default:
		inv.Status = entities.InvoiceStatusPaid
	}
}
