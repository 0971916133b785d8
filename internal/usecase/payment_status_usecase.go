package usecase

import (
	"context"
	"log"
	"strings"

	"jelajahsabang/internal/domain/entities"
)

// GetStatus answers a client poll with the current local payment state,
// refreshing it from the gateway first when the payment is still open.
//
// The gateway read is best-effort fresh: a failure or timeout degrades to the
// last known local state instead of failing the request. The returned payment
// always reflects the post-reconciliation row, never a snapshot the call just
// invalidated.
func (u *PaymentUseCase) GetStatus(ctx context.Context, paymentID, bookingID string) (entities.Payment, entities.Booking, error) {
	paymentID = strings.TrimSpace(paymentID)
	bookingID = strings.TrimSpace(bookingID)
	if paymentID == "" && bookingID == "" {
		return entities.Payment{}, entities.Booking{}, ErrInvalidPaymentLookup
	}
	log.Printf("[payment][usecase] get-status start payment_id=%q booking_id=%q", paymentID, bookingID)

	var (
		p   entities.Payment
		err error
	)
	if paymentID != "" {
		p, err = u.payments.GetByID(ctx, paymentID)
	} else {
		p, err = u.payments.GetByBookingID(ctx, bookingID)
	}
	if err != nil {
		log.Printf("[payment][usecase] get-status load failed payment_id=%q booking_id=%q err=%v", paymentID, bookingID, err)
		return entities.Payment{}, entities.Booking{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, entities.Booking{}, ErrPaymentNotFound
	}

	if p.Status == entities.PaymentStatusPending && p.XenditInvoiceID != "" && u.gateway != nil {
		gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
		inv, gerr := u.gateway.GetInvoice(gctx, p.XenditInvoiceID)
		cancel()
		if gerr != nil {
			log.Printf("[payment][usecase] invoice fetch failed payment_id=%s invoice_id=%s err=%v; answering with local state", p.ID, p.XenditInvoiceID, gerr)
		} else {
			reconciled, _, rerr := u.reconcile(ctx, p, inv)
			if rerr != nil {
				log.Printf("[payment][usecase] reconcile failed payment_id=%s err=%v", p.ID, rerr)
				return entities.Payment{}, entities.Booking{}, rerr
			}
			p = reconciled
		}
	}

	booking, err := u.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		log.Printf("[payment][usecase] booking load failed booking_id=%s err=%v", p.BookingID, err)
		return entities.Payment{}, entities.Booking{}, err
	}

	log.Printf("[payment][usecase] get-status success payment_id=%s status=%s booking_status=%s", p.ID, p.Status, booking.Status)
	return p, booking, nil
}
