package response

import (
	"time"

	"jelajahsabang/internal/domain/entities"
)

type BookingSummaryResponse struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"booking_number"`
	ServiceName   string    `json:"service_name"`
	StartDate     time.Time `json:"start_date"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
}

type PaymentResponse struct {
	PaymentID     string     `json:"payment_id"`
	BookingID     string     `json:"booking_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentLink   string     `json:"payment_link"`
	ExpiryDate    time.Time  `json:"expiry_date"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	Booking *BookingSummaryResponse `json:"booking,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		PaymentLink:   p.PaymentLink,
		ExpiryDate:    p.ExpiryDate,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func FromPaymentWithBooking(p entities.Payment, b entities.Booking) PaymentResponse {
	res := FromPayment(p)
	if b.ID != "" {
		res.Booking = &BookingSummaryResponse{
			ID:            b.ID,
			BookingNumber: b.BookingNumber,
			ServiceName:   b.ServiceName,
			StartDate:     b.StartDate,
			Quantity:      b.Quantity,
			TotalPrice:    b.TotalPrice,
			Status:        string(b.Status),
		}
	}
	return res
}
