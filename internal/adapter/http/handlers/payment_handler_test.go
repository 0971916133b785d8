package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jelajahsabang/internal/adapter/http/handlers/mocks"
	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:booking_id", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), "bk-1").Return(entities.Payment{}, usecase.ErrBookingCancelled)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:booking_id", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), "bk-1").Return(entities.Payment{}, usecase.ErrGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:booking_id", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), "bk-1").Return(entities.Payment{
			ID:          "pay-1",
			BookingID:   "bk-1",
			Amount:      350000,
			Currency:    "IDR",
			Status:      entities.PaymentStatusPending,
			PaymentLink: "https://checkout.xendit.co/web/inv-1",
			CreatedAt:   time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["payment_link"] != "https://checkout.xendit.co/web/inv-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identifiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/status", h.GetStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "", "").Return(entities.Payment{}, entities.Booking{}, usecase.ErrInvalidPaymentLookup)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/status", h.GetStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "pay-x", "").Return(entities.Payment{}, entities.Booking{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status?payment_id=pay-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with booking summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/status", h.GetStatus)

		paidAt := time.Now().UTC()
		uc.EXPECT().GetStatus(gomock.Any(), "", "bk-1").Return(
			entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPaid, PaidAt: &paidAt},
			entities.Booking{ID: "bk-1", BookingNumber: "JS-2026-0042", Status: entities.BookingStatusConfirmed},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status?booking_id=bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		booking, ok := body["booking"].(map[string]any)
		if !ok || booking["booking_number"] != "JS-2026-0042" {
			t.Fatalf("expected booking summary, got body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidBookingID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentLookup, http.StatusBadRequest},
		{usecase.ErrBookingNotFound, http.StatusNotFound},
		{usecase.ErrBookingCancelled, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrGatewayUnavailable, http.StatusBadGateway},
		{usecase.ErrReconciliationNeeded, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
