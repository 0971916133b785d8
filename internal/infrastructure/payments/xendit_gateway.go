package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"jelajahsabang/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/xendit/xendit-go"
	xenditclient "github.com/xendit/xendit-go/client"
	"github.com/xendit/xendit-go/invoice"
)

var ErrMissingXenditSecretKey = errors.New("missing XENDIT_SECRET_KEY")
var ErrXenditGatewayNotConfigured = errors.New("xendit gateway not configured")

// XenditGateway implements IInvoiceGateway on top of the Xendit invoice API.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / XENDIT_MOCK) fabricates invoices locally
// so the service can run without gateway credentials.

type XenditGateway struct {
	api      *xenditclient.API
	mockMode bool
}

var _ interfaces.IInvoiceGateway = (*XenditGateway)(nil)

func NewXenditGateway(secretKey string) (*XenditGateway, error) {
	if isInvoiceGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &XenditGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing XENDIT_SECRET_KEY")
		return nil, ErrMissingXenditSecretKey
	}

	log.Printf("[payment][gateway] Xendit client initialized")
	return &XenditGateway{api: xenditclient.New(secretKey)}, nil
}

func (g *XenditGateway) CreateInvoice(ctx context.Context, params interfaces.CreateInvoiceParams) (interfaces.CreatedInvoice, error) {
	if g != nil && g.mockMode {
		id := "mock-inv-" + uuid.NewString()
		log.Printf("[payment][gateway] mock create success invoice_id=%s external_ref=%s", id, params.ExternalRef)
		return interfaces.CreatedInvoice{
			InvoiceID:  id,
			InvoiceURL: "https://checkout.example.test/" + id,
			ExpiryDate: time.Now().UTC().Add(params.Duration),
		}, nil
	}
	if g == nil || g.api == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CreatedInvoice{}, ErrXenditGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create start external_ref=%s amount=%.2f", params.ExternalRef, params.Amount)
	data := &invoice.CreateParams{
		ExternalID:      params.ExternalRef,
		Amount:          params.Amount,
		PayerEmail:      params.PayerEmail,
		Description:     params.Description,
		Currency:        params.Currency,
		InvoiceDuration: int(params.Duration.Seconds()),
		Customer: xendit.InvoiceCustomer{
			GivenNames:   params.PayerName,
			Email:        params.PayerEmail,
			MobileNumber: params.PayerPhone,
		},
		CustomerNotificationPreference: xendit.InvoiceCustomerNotificationPreference{
			InvoiceCreated: []string{"email", "whatsapp"},
			InvoicePaid:    []string{"email", "whatsapp"},
		},
		SuccessRedirectURL: params.SuccessURL,
		FailureRedirectURL: params.FailureURL,
	}

	inv, xerr := g.api.Invoice.CreateWithContext(ctx, data)
	if xerr != nil {
		log.Printf("[payment][gateway] sdk create failed external_ref=%s err=%v", params.ExternalRef, xerr)
		return interfaces.CreatedInvoice{}, fmt.Errorf("xendit create invoice: %w", xerr)
	}

	expiry := time.Time{}
	if inv.ExpiryDate != nil {
		expiry = inv.ExpiryDate.UTC()
	}
	log.Printf("[payment][gateway] create success invoice_id=%s external_ref=%s", inv.ID, params.ExternalRef)
	return interfaces.CreatedInvoice{
		InvoiceID:  inv.ID,
		InvoiceURL: inv.InvoiceURL,
		ExpiryDate: expiry,
	}, nil
}

func (g *XenditGateway) GetInvoice(ctx context.Context, invoiceID string) (interfaces.InvoiceView, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock get invoice_id=%s status=PAID", invoiceID)
		now := time.Now().UTC()
		return interfaces.InvoiceView{
			InvoiceID:       invoiceID,
			Status:          interfaces.InvoiceStatusPaid,
			PaymentMethod:   "BANK_TRANSFER",
			XenditPaymentID: "mock-pay-" + invoiceID,
			PaidAt:          &now,
		}, nil
	}
	if g == nil || g.api == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.InvoiceView{}, ErrXenditGatewayNotConfigured
	}

	inv, xerr := g.api.Invoice.GetWithContext(ctx, &invoice.GetParams{ID: invoiceID})
	if xerr != nil {
		log.Printf("[payment][gateway] sdk get failed invoice_id=%s err=%v", invoiceID, xerr)
		return interfaces.InvoiceView{}, fmt.Errorf("xendit get invoice: %w", xerr)
	}

	view := interfaces.InvoiceView{
		InvoiceID:       inv.ID,
		Status:          inv.Status,
		PaymentMethod:   inv.PaymentMethod,
		XenditPaymentID: inv.PaymentID,
	}
	if inv.PaidAt != nil {
		paidAt := inv.PaidAt.UTC()
		view.PaidAt = &paidAt
	}
	log.Printf("[payment][gateway] get success invoice_id=%s status=%s", inv.ID, inv.Status)
	return view, nil
}

func isInvoiceGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "XENDIT_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
