package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "importafacil/internal/adapter/http/dto/request"
	response "importafacil/internal/adapter/http/dto/response"
	"importafacil/internal/domain/finance"
	"importafacil/internal/usecase"
	"importafacil/pkg"
)

// PaymentHandler records collected payments against invoices.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RegisterPayment charges (when a gateway is configured) and records the
// amount on the invoice identified in the path.
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] register start invoice_id=%s", invoiceID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inv, err := h.usecase.RegisterPayment(c.Request.Context(), invoiceID, payload.Amount, payload.GatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] register failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] register success invoice_id=%s status=%s amount_paid=%.2f",
		invoiceID, inv.Status, inv.AmountPaid)

	c.JSON(http.StatusOK, response.FromInvoicePayment(inv, finance.RemainingBalance(inv)))
}

func mapPaymentError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentOnDraftInvoice):
		return pkg.NewDomainErrorSimple("INVOICE_IS_DRAFT", "Draft invoices cannot receive payments", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment gateway rejected the charge", http.StatusBadGateway)
	default:
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", "Failed to register payment", http.StatusInternalServerError)
	}
}
