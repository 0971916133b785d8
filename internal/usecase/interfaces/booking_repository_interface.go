package interfaces

import (
	"context"

	"jelajahsabang/internal/domain/entities"
)

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/booking_repository_mock.go -package=mock_interfaces

// IBookingRepository abstracts the booking store.
//
// Bookings are created and cancelled by the booking CRUD surface outside this
// service; here we only read them and advance their status along the payment
// lifecycle. A missing booking is returned as the zero value, not an error.

type IBookingRepository interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
