package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"importafacil/internal/domain/entities"
	"importafacil/internal/domain/finance"
	"importafacil/internal/numeric"
	"importafacil/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrInvalidGatewayPayload  = errors.New("gateway payload is not a json object")
	ErrPaymentInvoiceNotFound = errors.New("invoice not found")
	ErrPaymentOnDraftInvoice  = errors.New("draft invoices cannot receive payments")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected the charge")
)

// IPaymentUseCase records a collected payment against an invoice.
type IPaymentUseCase interface {
	RegisterPayment(ctx context.Context, invoiceID string, amount float64, gatewayPayload json.RawMessage) (entities.Invoice, error)
}

// PaymentUseCase charges through the optional gateway, then applies the
// amount/status coupling and overwrites the dataset. With no gateway
// configured the charge step is skipped and only the bookkeeping happens.
type PaymentUseCase struct {
	datasets IDatasetUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(datasets IDatasetUseCase, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{datasets: datasets, gateway: gateway}
}

func (u *PaymentUseCase) RegisterPayment(ctx context.Context, invoiceID string, amount float64, gatewayPayload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	amount = numeric.SafeNumber(amount)
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidPaymentAmount
	}
	// Caller input, validated up front: a broken payload is the caller's
	// mistake, not a provider failure.
	if len(gatewayPayload) > 0 {
		var fields map[string]any
		if err := json.Unmarshal(gatewayPayload, &fields); err != nil {
			return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvalidGatewayPayload, err)
		}
	}

	ds, err := u.datasets.Fetch(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	idx := -1
	for i, inv := range ds.Invoices {
		if inv.ID == invoiceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("[payment][usecase] invoice not found invoice_id=%s", invoiceID)
		return entities.Invoice{}, ErrPaymentInvoiceNotFound
	}
	inv := ds.Invoices[idx]
	if inv.Status == entities.InvoiceStatusDraft {
		return entities.Invoice{}, ErrPaymentOnDraftInvoice
	}

	if u.gateway != nil {
		providerPaymentID, providerStatus, _, err := u.gateway.ChargeInvoice(ctx, inv, amount, gatewayPayload)
		if err != nil {
			log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", invoiceID, err)
			return entities.Invoice{}, fmt.Errorf("%w: %v", ErrPaymentGatewayRejected, err)
		}
		log.Printf("[payment][usecase] gateway success invoice_id=%s provider_payment_id=%s provider_status=%s",
			invoiceID, providerPaymentID, providerStatus)
	}

	finance.ApplyAmountPaid(&inv, inv.AmountPaid+amount)
	ds.Invoices[idx] = inv

	if err := u.datasets.Overwrite(ctx, ds); err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[payment][usecase] payment recorded invoice_id=%s amount=%.2f status=%s",
		invoiceID, amount, inv.Status)
	return inv, nil
}
