package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=invoice_gateway_interface.go -destination=mocks/invoice_gateway_mock.go -package=mock_interfaces

// Gateway-side invoice statuses. Xendit reports SETTLED for funds already
// moved to the merchant balance; for reconciliation it means the same as PAID.
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusSettled = "SETTLED"
	InvoiceStatusExpired = "EXPIRED"
)

// CreateInvoiceParams carries everything the gateway needs to open an invoice.
// ExternalRef must be unique per attempt so a duplicated call is
// distinguishable on the gateway side.
type CreateInvoiceParams struct {
	ExternalRef string
	Amount      float64
	Currency    string
	Description string
	PayerName   string
	PayerEmail  string
	PayerPhone  string
	Duration    time.Duration
	SuccessURL  string
	FailureURL  string
}

// CreatedInvoice is the gateway's answer to CreateInvoice.
type CreatedInvoice struct {
	InvoiceID  string
	InvoiceURL string
	ExpiryDate time.Time
}

// InvoiceView is the gateway-reported state of an invoice, whether obtained
// from a live fetch or carried by a webhook payload. Payment details are only
// present once the gateway considers the invoice paid.
type InvoiceView struct {
	InvoiceID       string
	Status          string
	PaymentMethod   string
	XenditPaymentID string
	PaidAt          *time.Time
}

// IInvoiceGateway abstracts the external invoicing provider (Xendit).
//
// Treated as an unreliable network dependency: callers bound every call with a
// timeout and must not block local reads on it.
type IInvoiceGateway interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (CreatedInvoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (InvoiceView, error)
}
