package interfaces

import (
	"context"
	"time"

	"jelajahsabang/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// MarkPaid and MarkFailed are conditional transitions: they apply only while
// the stored status is still pending, and report whether the write applied.
// A rejected condition is not an error; it means another caller already moved
// the payment to a terminal state.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error)
	GetOpenByBookingID(ctx context.Context, bookingID string) (entities.Payment, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Payment, error)
	MarkPaid(ctx context.Context, id, paymentMethod, xenditPaymentID string, paidAt time.Time) (entities.Payment, bool, error)
	MarkFailed(ctx context.Context, id string) (entities.Payment, bool, error)
}
