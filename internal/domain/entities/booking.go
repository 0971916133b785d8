package entities

import "time"

// BookingStatus tracks a booking through the payment lifecycle.
//
// Transitions owned by this service:
//   - pending -> pending_payment (payment intent created)
//   - pending_payment -> confirmed (reconciler, paid transition only)
//
// Cancellation is requested by the customer through the booking CRUD surface,
// which lives outside this service.

type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// Booking is the service purchase this service settles payment for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// TotalPrice is fixed at booking creation; the payment intent copies it once and
// never re-reads it, so a later price edit cannot race an open invoice.

type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"booking_number"`
	ServiceID     string        `json:"service_id"`
	UserID        string        `json:"user_id"`
	ServiceName   string        `json:"service_name"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	StartDate     time.Time     `json:"start_date"`
	Quantity      int           `json:"quantity"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
