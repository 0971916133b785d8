package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingCancelled     = errors.New("booking cancelled")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentLookup = errors.New("payment_id or booking_id required")
	ErrGatewayUnavailable   = errors.New("invoice gateway unavailable")

	// ErrReconciliationNeeded marks the one non-self-healing failure: an
	// invoice exists at the gateway but the local payment row was not written.
	// It must surface distinctly so the gap can be repaired.
	ErrReconciliationNeeded = errors.New("invoice created but payment not recorded")
)

const (
	defaultCurrency        = "IDR"
	defaultInvoiceDuration = 24 * time.Hour
	defaultGatewayTimeout  = 10 * time.Second
)

// IPaymentUseCase exposes the payment lifecycle operations.
//
//   - CreateIntent opens (or reuses) a gateway invoice for a booking.
//   - GetStatus is the pull path: a client poll that may itself reconcile.
//   - HandleCallback is the push path: at-least-once gateway deliveries.
//
// Both paths funnel into the same reconcile step; the conditional status
// write in the repository is the only thing that makes them safe to race.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, bookingID string) (entities.Payment, error)
	GetStatus(ctx context.Context, paymentID, bookingID string) (entities.Payment, entities.Booking, error)
	HandleCallback(ctx context.Context, event CallbackEvent) error
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	bookings interfaces.IBookingRepository
	gateway  interfaces.IInvoiceGateway
	notifier interfaces.INotifier

	frontendURL     string
	currency        string
	invoiceDuration time.Duration
	gatewayTimeout  time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	bookings interfaces.IBookingRepository,
	gateway interfaces.IInvoiceGateway,
	notifier interfaces.INotifier,
	frontendURL string,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:        payments,
		bookings:        bookings,
		gateway:         gateway,
		notifier:        notifier,
		frontendURL:     strings.TrimRight(frontendURL, "/"),
		currency:        defaultCurrency,
		invoiceDuration: defaultInvoiceDuration,
		gatewayTimeout:  defaultGatewayTimeout,
	}
}

// CreateIntent idempotently opens a gateway invoice for the booking.
//
// Side effect order is load-bearing: invoice first, then payment row, then
// booking status. A crash mid-sequence can leave an orphaned invoice (safe to
// ignore) but never a pending_payment booking without a payment record.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, bookingID string) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-intent start raw_booking_id=%q", bookingID)
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Payment{}, ErrInvalidBookingID
	}
	if u.payments == nil {
		return entities.Payment{}, errors.New("payment repository not configured")
	}
	if u.bookings == nil {
		return entities.Payment{}, errors.New("booking repository not configured")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("invoice gateway not configured")
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking booking_id=%s err=%v", bookingID, err)
		return entities.Payment{}, err
	}
	if booking.ID == "" {
		log.Printf("[payment][usecase] booking not found booking_id=%s", bookingID)
		return entities.Payment{}, ErrBookingNotFound
	}
	if booking.Status == entities.BookingStatusCancelled {
		log.Printf("[payment][usecase] booking cancelled booking_id=%s", bookingID)
		return entities.Payment{}, ErrBookingCancelled
	}

	// Idempotency guard: a pending or paid payment means an invoice is
	// already open (or settled) for this booking. Return it unchanged and
	// make no second gateway call.
	existing, err := u.payments.GetOpenByBookingID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed checking open payments booking_id=%s err=%v", bookingID, err)
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		log.Printf("[payment][usecase] reusing open payment booking_id=%s payment_id=%s status=%s", bookingID, existing.ID, existing.Status)
		return existing, nil
	}

	externalRef := fmt.Sprintf("booking-%s-%d", bookingID, time.Now().UnixMilli())
	params := interfaces.CreateInvoiceParams{
		ExternalRef: externalRef,
		Amount:      booking.TotalPrice,
		Currency:    u.currency,
		Description: fmt.Sprintf("Pembayaran untuk %s - Booking #%s", booking.ServiceName, booking.BookingNumber),
		PayerName:   booking.CustomerName,
		PayerEmail:  booking.CustomerEmail,
		PayerPhone:  booking.CustomerPhone,
		Duration:    u.invoiceDuration,
		SuccessURL:  fmt.Sprintf("%s/booking/success?booking_id=%s", u.frontendURL, bookingID),
		FailureURL:  fmt.Sprintf("%s/booking/failed?booking_id=%s", u.frontendURL, bookingID),
	}

	gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()
	log.Printf("[payment][usecase] creating invoice booking_id=%s external_ref=%s amount=%.2f", bookingID, externalRef, booking.TotalPrice)
	inv, err := u.gateway.CreateInvoice(gctx, params)
	if err != nil {
		log.Printf("[payment][usecase] invoice create failed booking_id=%s err=%v", bookingID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:              uuid.NewString(),
		BookingID:       bookingID,
		Amount:          booking.TotalPrice,
		Currency:        u.currency,
		Status:          entities.PaymentStatusPending,
		XenditInvoiceID: inv.InvoiceID,
		PaymentLink:     inv.InvoiceURL,
		ExpiryDate:      inv.ExpiryDate,
		CreatedAt:       now,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed after invoice booking_id=%s invoice_id=%s err=%v", bookingID, inv.InvoiceID, err)
		return entities.Payment{}, fmt.Errorf("%w: invoice_id=%s booking_id=%s: %v", ErrReconciliationNeeded, inv.InvoiceID, bookingID, err)
	}

	if _, err := u.bookings.UpdateStatus(ctx, bookingID, entities.BookingStatusPendingPayment); err != nil {
		// The payment row is durable; the booking catches up on the paid
		// transition. Log only.
		log.Printf("[payment][usecase] booking status update failed booking_id=%s err=%v", bookingID, err)
	}

	log.Printf("[payment][usecase] create-intent success booking_id=%s payment_id=%s invoice_id=%s", bookingID, created.ID, inv.InvoiceID)
	return created, nil
}
