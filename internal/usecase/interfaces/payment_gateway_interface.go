package interfaces

import (
	"context"
	"encoding/json"

	"importafacil/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The gateway owns provider-request shaping: it stamps the invoice id as the
// external reference and the charged amount as the transaction amount, then
// merges the caller's provider fields (payer, card token) on top. Callers
// hand over the invoice, never a pre-built provider request.
type IPaymentGateway interface {
	ChargeInvoice(ctx context.Context, inv entities.Invoice, amount float64, providerFields json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
