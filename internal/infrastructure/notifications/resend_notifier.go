package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")
var ErrUnknownNotificationType = errors.New("unknown notification type")

const defaultFromAddress = "JelajahSabang <noreply@jelajahsabang.com>"

// ResendNotifier sends customer emails through the Resend API.

type ResendNotifier struct {
	client *resend.Client
	from   string
}

var _ interfaces.INotifier = (*ResendNotifier)(nil)

func NewResendNotifier(apiKey, from string) (*ResendNotifier, error) {
	if apiKey == "" {
		log.Printf("[notification][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	if from == "" {
		from = defaultFromAddress
	}
	log.Printf("[notification][resend] client initialized from=%s", from)
	return &ResendNotifier{client: resend.NewClient(apiKey), from: from}, nil
}

func (n *ResendNotifier) Send(ctx context.Context, booking entities.Booking, kind entities.NotificationType) error {
	subject, html, err := buildEmail(booking, kind)
	if err != nil {
		return err
	}

	sent, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{booking.CustomerEmail},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("[notification][resend] send failed booking_id=%s type=%s err=%v", booking.ID, kind, err)
		return err
	}
	log.Printf("[notification][resend] send success booking_id=%s type=%s email_id=%s", booking.ID, kind, sent.Id)
	return nil
}

func buildEmail(booking entities.Booking, kind entities.NotificationType) (subject, html string, err error) {
	switch kind {
	case entities.NotificationBookingConfirmed:
		subject = "Booking Anda Telah Dikonfirmasi"
		html = fmt.Sprintf(
			"<h2>Booking Dikonfirmasi</h2>"+
				"<p>Hai %s,</p>"+
				"<p>Booking Anda untuk %s telah dikonfirmasi.</p>"+
				"<p>Detail booking:</p>"+
				"<ul><li>Nomor Booking: %s</li><li>Tanggal: %s</li></ul>",
			booking.CustomerName, booking.ServiceName, booking.BookingNumber,
			booking.StartDate.Format("02-01-2006"),
		)
	case entities.NotificationPaymentReceived:
		subject = "Pembayaran Anda Telah Diterima"
		html = fmt.Sprintf(
			"<h2>Pembayaran Berhasil</h2>"+
				"<p>Hai %s,</p>"+
				"<p>Pembayaran Anda untuk booking %s telah kami terima.</p>"+
				"<p>Terima kasih telah memilih JelajahSabang!</p>",
			booking.CustomerName, booking.BookingNumber,
		)
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnknownNotificationType, kind)
	}
	return subject, html, nil
}
