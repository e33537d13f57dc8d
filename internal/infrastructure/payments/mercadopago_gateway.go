// Package payments holds the Mercado Pago charge gateway behind the
// document service's payment registration endpoint.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"importafacil/internal/domain/entities"
	"importafacil/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoices through the Mercado Pago SDK. Mock
// mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) approves every charge
// locally, which is how the tool runs in development.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isGatewayMockEnabled() {
		log.Printf("[payments][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payments][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[payments][mercadopago] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[payments][mercadopago] client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// ChargeInvoice builds the provider request from the invoice and submits
// it. The invoice ledger is authoritative for the amount, so the caller's
// provider fields can never override transaction_amount.
func (g *MercadoPagoGateway) ChargeInvoice(ctx context.Context, inv entities.Invoice, amount float64, providerFields json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	reqBody, err := buildChargeRequest(inv, amount, providerFields)
	if err != nil {
		return "", "", nil, err
	}

	if g != nil && g.mockMode {
		return g.mockCharge(inv, reqBody)
	}

	if g == nil || g.client == nil {
		log.Printf("[payments][mercadopago] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payments][mercadopago] charge start invoice_id=%s amount=%.2f", inv.ID, amount)

	var req payment.Request
	if err := json.Unmarshal(reqBody, &req); err != nil {
		log.Printf("[payments][mercadopago] request unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payments][mercadopago] sdk create failed invoice_id=%s err=%v", inv.ID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payments][mercadopago] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payments][mercadopago] charge success invoice_id=%s provider_payment_id=%d provider_status=%s",
		inv.ID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// buildChargeRequest merges the caller's provider fields under the invoice
// identity: external_reference and description default from the invoice,
// transaction_amount is always the ledger amount.
func buildChargeRequest(inv entities.Invoice, amount float64, providerFields json.RawMessage) (json.RawMessage, error) {
	m := map[string]any{}
	if len(providerFields) > 0 {
		if err := json.Unmarshal(providerFields, &m); err != nil {
			return nil, err
		}
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = inv.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("ImportaFacil invoice %s", inv.ID)
	}
	m["transaction_amount"] = amount
	return json.Marshal(m)
}

func (g *MercadoPagoGateway) mockCharge(inv entities.Invoice, reqBody json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if err := json.Unmarshal(reqBody, &resp); err != nil {
		return "", "", nil, err
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payments][mercadopago] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payments][mercadopago] mock charge approved invoice_id=%s provider_payment_id=%s", inv.ID, id)
	return id, "approved", b, nil
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
