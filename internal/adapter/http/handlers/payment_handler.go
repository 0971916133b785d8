package handlers

import (
	"errors"
	"log"
	"net/http"

	response "jelajahsabang/internal/adapter/http/dto/response"
	"jelajahsabang/internal/usecase"
	"jelajahsabang/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment intent and status poll endpoints.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent opens (or reuses) a payment for the booking in the path.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[payment][handler] create-intent start booking_id=%s", bookingID)

	created, err := h.usecase.CreateIntent(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[payment][handler] create-intent failed booking_id=%s err=%v", bookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-intent success booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetStatus answers a status poll keyed by payment_id or booking_id.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	paymentID := c.Query("payment_id")
	bookingID := c.Query("booking_id")
	log.Printf("[payment][handler] get-status start payment_id=%q booking_id=%q", paymentID, bookingID)

	payment, booking, err := h.usecase.GetStatus(c.Request.Context(), paymentID, bookingID)
	if err != nil {
		log.Printf("[payment][handler] get-status failed payment_id=%q booking_id=%q err=%v", paymentID, bookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] get-status success payment_id=%s status=%s", payment.ID, payment.Status)

	c.JSON(http.StatusOK, response.FromPaymentWithBooking(payment, booking))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPaymentLookup):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingCancelled):
		return pkg.NewDomainErrorSimple("BOOKING_CANCELLED", "Booking is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable, retry later", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrReconciliationNeeded):
		return pkg.NewDomainError("RECONCILIATION_NEEDED", "Invoice created but payment not recorded", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
