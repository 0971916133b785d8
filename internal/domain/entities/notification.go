package entities

// NotificationType identifies the customer email sent after a confirmed
// transition.

type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationPaymentReceived  NotificationType = "payment_received"
)
