package usecase

import (
	"context"
	"log"
	"time"

	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase/interfaces"
)

// reconcile maps a gateway invoice view onto the local payment/booking state.
//
// It is the single translation point for both the poll and webhook paths and
// must behave identically regardless of caller. All transitions go through
// the repository's conditional writes; losing that write to a concurrent
// caller is a no-op success, not an error.
//
// Policy decisions encoded here:
//   - terminal local states are final; a gateway PAID over a local failed
//     (late settlement after expiry) is logged, never applied
//   - an indeterminate gateway status is treated as still pending, erring
//     toward leaving money unconfirmed
func (u *PaymentUseCase) reconcile(ctx context.Context, p entities.Payment, inv interfaces.InvoiceView) (entities.Payment, bool, error) {
	if p.Status.IsTerminal() {
		if p.Status == entities.PaymentStatusFailed && invoicePaid(inv.Status) {
			log.Printf("[payment][reconciler] gateway reports %s for failed payment payment_id=%s invoice_id=%s; not resurrecting", inv.Status, p.ID, p.XenditInvoiceID)
		}
		return p, false, nil
	}

	switch {
	case invoicePaid(inv.Status):
		paidAt := time.Now().UTC()
		if inv.PaidAt != nil {
			paidAt = inv.PaidAt.UTC()
		}
		updated, applied, err := u.payments.MarkPaid(ctx, p.ID, inv.PaymentMethod, inv.XenditPaymentID, paidAt)
		if err != nil {
			return p, false, err
		}
		if !applied {
			log.Printf("[payment][reconciler] paid transition lost to concurrent caller payment_id=%s", p.ID)
			return u.reload(ctx, p), false, nil
		}
		log.Printf("[payment][reconciler] payment paid payment_id=%s booking_id=%s method=%s", updated.ID, updated.BookingID, updated.PaymentMethod)
		u.confirmBooking(ctx, updated)
		return updated, true, nil

	case inv.Status == interfaces.InvoiceStatusExpired:
		updated, applied, err := u.payments.MarkFailed(ctx, p.ID)
		if err != nil {
			return p, false, err
		}
		if !applied {
			log.Printf("[payment][reconciler] failed transition lost to concurrent caller payment_id=%s", p.ID)
			return u.reload(ctx, p), false, nil
		}
		// Booking stays pending_payment so the customer can be offered a
		// fresh intent.
		log.Printf("[payment][reconciler] payment failed (invoice expired) payment_id=%s booking_id=%s", updated.ID, updated.BookingID)
		return updated, true, nil

	default:
		return p, false, nil
	}
}

// invoicePaid reports whether the gateway considers the invoice settled.
func invoicePaid(status string) bool {
	return status == interfaces.InvoiceStatusPaid || status == interfaces.InvoiceStatusSettled
}

// confirmBooking advances the booking and dispatches the confirmation emails.
// Best-effort by contract: the payment is already durably paid, so a failure
// here is logged for the operational sweep, never propagated.
func (u *PaymentUseCase) confirmBooking(ctx context.Context, p entities.Payment) {
	booking, err := u.bookings.UpdateStatus(ctx, p.BookingID, entities.BookingStatusConfirmed)
	if err != nil {
		log.Printf("[payment][reconciler] booking confirm failed booking_id=%s payment_id=%s err=%v; booking left behind a paid payment", p.BookingID, p.ID, err)
		return
	}
	if booking.ID == "" {
		log.Printf("[payment][reconciler] booking missing on confirm booking_id=%s payment_id=%s", p.BookingID, p.ID)
		return
	}

	u.notify(ctx, booking, entities.NotificationPaymentReceived)
	u.notify(ctx, booking, entities.NotificationBookingConfirmed)
}

func (u *PaymentUseCase) notify(ctx context.Context, booking entities.Booking, kind entities.NotificationType) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Send(ctx, booking, kind); err != nil {
		log.Printf("[payment][reconciler] notification send failed booking_id=%s type=%s err=%v", booking.ID, kind, err)
	}
}

// reload fetches the post-transition row after a lost conditional write so the
// caller answers with current state instead of the stale snapshot it raced on.
func (u *PaymentUseCase) reload(ctx context.Context, p entities.Payment) entities.Payment {
	cur, err := u.payments.GetByID(ctx, p.ID)
	if err != nil || cur.ID == "" {
		return p
	}
	return cur
}
