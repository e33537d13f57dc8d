package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"importafacil/internal/adapter/http/handlers/mocks"
	"importafacil/internal/domain/entities"
	"importafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:invoice_id", h.RegisterPayment)
	return r
}

func TestPaymentHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/i1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RegisterPayment(gomock.Any(), "i1", 20.0, gomock.Any()).Return(entities.Invoice{
			ID:            "i1",
			Status:        entities.InvoiceStatusPartial,
			AmountPaid:    20,
			GrandTotalUSD: 62,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/i1", bytes.NewBufferString(`{"amount":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["status"] != "partial" || resp["remainingBalance"] != 42.0 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RegisterPayment(gomock.Any(), "missing", 20.0, gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrPaymentInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/missing", bytes.NewBufferString(`{"amount":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed gateway payload is the caller's fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RegisterPayment(gomock.Any(), "i1", 20.0, gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrInvalidGatewayPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/i1", bytes.NewBufferString(`{"amount":20,"gatewayPayload":{"x":1}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().RegisterPayment(gomock.Any(), "i1", 20.0, gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrPaymentGatewayRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/i1", bytes.NewBufferString(`{"amount":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
