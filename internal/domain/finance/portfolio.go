package finance

import (
	"importafacil/internal/domain/entities"
)

// Summary aggregates the financial position across all invoices.
type Summary struct {
	// RealizedProfit recognizes each invoice's theoretical profit in
	// proportion to cash collected, clamped at 100%.
	RealizedProfit float64
	// OutstandingDebt is the uncollected balance of issued invoices
	// (Pending and Partial).
	OutstandingDebt float64
	TotalInvoiced   float64
	TotalCollected  float64
}

// RecognizedProfit is the portion of an invoice's theoretical profit backed
// by collected cash. Draft and Pending invoices recognize nothing; partially
// paid invoices recognize proportionally; overpayment never recognizes more
// than the theoretical profit.
func RecognizedProfit(inv entities.Invoice, version int) float64 {
	switch inv.Status {
	case entities.InvoiceStatusPartial, entities.InvoiceStatusPaid, entities.InvoiceStatusDelivered:
	default:
		return 0
	}
	profit := TheoreticalProfit(inv, version)
	if inv.GrandTotalUSD <= 0 {
		return profit
	}
	ratio := inv.AmountPaid / inv.GrandTotalUSD
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return Round2(profit * ratio)
}

// Portfolio computes the aggregate summary used by reporting. Invoices are
// recomputed before aggregation so stale persisted totals cannot leak in.
func Portfolio(invoices []entities.Invoice, s entities.Settings) Summary {
	version := s.Version()
	var out Summary
	for _, inv := range invoices {
		Recompute(&inv, s)
		out.RealizedProfit += RecognizedProfit(inv, version)
		out.TotalInvoiced += inv.GrandTotalUSD
		out.TotalCollected += inv.AmountPaid
		switch inv.Status {
		case entities.InvoiceStatusPending, entities.InvoiceStatusPartial:
			out.OutstandingDebt += RemainingBalance(inv)
		}
	}
	out.RealizedProfit = Round2(out.RealizedProfit)
	out.OutstandingDebt = Round2(out.OutstandingDebt)
	out.TotalInvoiced = Round2(out.TotalInvoiced)
	out.TotalCollected = Round2(out.TotalCollected)
	return out
}
