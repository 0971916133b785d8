package entities

import "time"

// PaymentStatus represents the local payment state.
//
// paid and failed are terminal: no automatic transition ever leaves them.
// A failed payment is abandoned, not retried; retrying means opening a new
// payment row through a new intent.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsTerminal reports whether no further automatic transition is permitted.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// Payment is one payment attempt against a booking, backed by exactly one
// Xendit invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//   - GSI2 (xendit_invoice_id-index): xendit_invoice_id
//
// PaymentMethod, XenditPaymentID and PaidAt are written only by the paid
// transition, in the same conditional update as the status, so they can never
// be observed half-applied.

type Payment struct {
	ID              string        `json:"id"`
	BookingID       string        `json:"booking_id"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	PaymentMethod   string        `json:"payment_method,omitempty"`
	XenditInvoiceID string        `json:"xendit_invoice_id"`
	XenditPaymentID string        `json:"xendit_payment_id,omitempty"`
	PaymentLink     string        `json:"payment_link"`
	ExpiryDate      time.Time     `json:"expiry_date"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
