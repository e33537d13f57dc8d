package response

import (
	"importafacil/internal/domain/entities"
)

type PaymentResponse struct {
	InvoiceID        string  `json:"invoiceId"`
	Status           string  `json:"status"`
	AmountPaid       float64 `json:"amountPaid"`
	GrandTotalUSD    float64 `json:"grandTotalUsd"`
	RemainingBalance float64 `json:"remainingBalance"`
}

func FromInvoicePayment(inv entities.Invoice, remaining float64) PaymentResponse {
	return PaymentResponse{
		InvoiceID:        inv.ID,
		Status:           string(inv.Status),
		AmountPaid:       inv.AmountPaid,
		GrandTotalUSD:    inv.GrandTotalUSD,
		RemainingBalance: remaining,
	}
}
