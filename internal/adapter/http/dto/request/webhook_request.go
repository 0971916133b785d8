package request

import "time"

// XenditInvoiceData is the invoice object nested in a Xendit callback.
type XenditInvoiceData struct {
	ID            string     `json:"id"`
	ExternalID    string     `json:"external_id"`
	Status        string     `json:"status"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	PaymentID     string     `json:"payment_id"`
	PaidAt        *time.Time `json:"paid_at"`
}

// XenditCallbackRequest is the body Xendit posts to the webhook endpoint.
type XenditCallbackRequest struct {
	EventType string            `json:"event_type" binding:"required"`
	Data      XenditInvoiceData `json:"data"`
}
