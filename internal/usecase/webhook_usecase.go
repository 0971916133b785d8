package usecase

import (
	"context"
	"log"

	"jelajahsabang/internal/usecase/interfaces"
)

// Callback event types Xendit delivers for invoices.
const (
	CallbackEventInvoicePaid    = "invoice.paid"
	CallbackEventInvoiceExpired = "invoice.expired"
)

// CallbackEvent is a gateway webhook delivery after credential verification.
// The invoice view carries the status the event payload reported.
type CallbackEvent struct {
	EventType string
	Invoice   interfaces.InvoiceView
}

// HandleCallback applies a webhook delivery through the shared reconcile step.
//
// Deliveries are at-least-once; a redelivery of a paid event meets the
// terminal-state guard and lands as a no-op, so no processed-event ledger is
// kept. Unknown invoices are acknowledged without mutation: retrying would
// never make an invoice this system did not issue appear.
//
// A returned error means a local store failure; the handler answers non-2xx
// and the gateway redelivers.
func (u *PaymentUseCase) HandleCallback(ctx context.Context, event CallbackEvent) error {
	inv := event.Invoice
	log.Printf("[webhook][usecase] event received type=%s invoice_id=%s status=%s", event.EventType, inv.InvoiceID, inv.Status)

	if event.EventType != CallbackEventInvoicePaid && event.EventType != CallbackEventInvoiceExpired {
		log.Printf("[webhook][usecase] event type %s needs no action", event.EventType)
		return nil
	}
	if inv.InvoiceID == "" {
		log.Printf("[webhook][usecase] event without invoice id; acknowledging")
		return nil
	}

	if inv.Status == "" {
		// Some deliveries omit the invoice status; the event type already
		// names the terminal state.
		switch event.EventType {
		case CallbackEventInvoicePaid:
			inv.Status = interfaces.InvoiceStatusPaid
		case CallbackEventInvoiceExpired:
			inv.Status = interfaces.InvoiceStatusExpired
		}
	}

	p, err := u.payments.GetByInvoiceID(ctx, inv.InvoiceID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed invoice_id=%s err=%v", inv.InvoiceID, err)
		return err
	}
	if p.ID == "" {
		log.Printf("[webhook][usecase] no payment for invoice_id=%s; acknowledging without action", inv.InvoiceID)
		return nil
	}

	_, applied, err := u.reconcile(ctx, p, inv)
	if err != nil {
		log.Printf("[webhook][usecase] reconcile failed invoice_id=%s payment_id=%s err=%v", inv.InvoiceID, p.ID, err)
		return err
	}
	if applied {
		log.Printf("[webhook][usecase] event applied invoice_id=%s payment_id=%s", inv.InvoiceID, p.ID)
	} else {
		log.Printf("[webhook][usecase] event was a no-op invoice_id=%s payment_id=%s status=%s", inv.InvoiceID, p.ID, p.Status)
	}
	return nil
}
