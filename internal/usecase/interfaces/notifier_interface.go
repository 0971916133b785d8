package interfaces

import (
	"context"

	"jelajahsabang/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier dispatches customer emails after a confirmed transition.
//
// Fire-and-forget: a send failure is logged by the caller and never rolls back
// the payment transition that triggered it.
type INotifier interface {
	Send(ctx context.Context, booking entities.Booking, kind entities.NotificationType) error
}
