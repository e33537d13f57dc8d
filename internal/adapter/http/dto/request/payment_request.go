package request

import "encoding/json"

// PaymentRequest records a collected amount against an invoice. The
// optional gateway payload is forwarded to the payment provider verbatim
// (enriched with the invoice reference and amount).
type PaymentRequest struct {
	Amount         float64         `json:"amount" binding:"required"`
	GatewayPayload json.RawMessage `json:"gatewayPayload,omitempty"`
}
