package usecase

import (
	"context"
	"errors"
	"testing"

	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase/interfaces"
	mock_interfaces "jelajahsabang/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_HandleCallback_AckPaths(t *testing.T) {
	t.Run("unhandled event type acked without lookup", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, "")
		err := uc.HandleCallback(context.Background(), CallbackEvent{EventType: "invoice.created", Invoice: interfaces.InvoiceView{InvoiceID: "inv-1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing invoice id acked", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, "")
		err := uc.HandleCallback(context.Background(), CallbackEvent{EventType: CallbackEventInvoicePaid})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown invoice acked without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, "")

		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-stranger").Return(entities.Payment{}, nil)

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoicePaid,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-stranger", Status: interfaces.InvoiceStatusPaid},
		})
		if err != nil {
			t.Fatalf("unknown invoice must be acked, got %v", err)
		}
	})

	t.Run("lookup failure returned for gateway retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, "")

		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(entities.Payment{}, errors.New("ddb"))

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoicePaid,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-1", Status: interfaces.InvoiceStatusPaid},
		})
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}

func TestPaymentUseCase_HandleCallback_Transitions(t *testing.T) {
	t.Run("paid event applies the paid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, notifier, "")

		pending := entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPending, XenditInvoiceID: "inv-1"}
		paid := pending
		paid.Status = entities.PaymentStatusPaid
		confirmed := entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}

		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(pending, nil)
		payments.EXPECT().MarkPaid(gomock.Any(), "pay-1", "QRIS", "xp-1", gomock.Any()).Return(paid, true, nil)
		bookings.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusConfirmed).Return(confirmed, nil)
		notifier.EXPECT().Send(gomock.Any(), confirmed, entities.NotificationPaymentReceived).Return(nil)
		notifier.EXPECT().Send(gomock.Any(), confirmed, entities.NotificationBookingConfirmed).Return(nil)

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoicePaid,
			Invoice: interfaces.InvoiceView{
				InvoiceID:       "inv-1",
				Status:          interfaces.InvoiceStatusPaid,
				PaymentMethod:   "QRIS",
				XenditPaymentID: "xp-1",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("redelivered paid event is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, notifier, "")

		already := entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPaid, XenditInvoiceID: "inv-1"}
		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(already, nil)
		// Terminal guard: no MarkPaid, no booking update, no second email.

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoicePaid,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-1", Status: interfaces.InvoiceStatusPaid},
		})
		if err != nil {
			t.Fatalf("redelivery must be acked, got %v", err)
		}
	})

	t.Run("expired event fails the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, "")

		pending := entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPending, XenditInvoiceID: "inv-1"}
		failed := pending
		failed.Status = entities.PaymentStatusFailed

		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(pending, nil)
		payments.EXPECT().MarkFailed(gomock.Any(), "pay-1").Return(failed, true, nil)

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoiceExpired,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-1", Status: interfaces.InvoiceStatusExpired},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("event without status infers it from the event type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, "")

		pending := entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPending, XenditInvoiceID: "inv-1"}
		failed := pending
		failed.Status = entities.PaymentStatusFailed

		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(pending, nil)
		payments.EXPECT().MarkFailed(gomock.Any(), "pay-1").Return(failed, true, nil)

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoiceExpired,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reconcile store error returned for gateway retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, "")

		pending := entities.Payment{ID: "pay-1", BookingID: "bk-1", Status: entities.PaymentStatusPending, XenditInvoiceID: "inv-1"}
		payments.EXPECT().GetByInvoiceID(gomock.Any(), "inv-1").Return(pending, nil)
		payments.EXPECT().MarkPaid(gomock.Any(), "pay-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Payment{}, false, errors.New("ddb"))

		err := uc.HandleCallback(context.Background(), CallbackEvent{
			EventType: CallbackEventInvoicePaid,
			Invoice:   interfaces.InvoiceView{InvoiceID: "inv-1", Status: interfaces.InvoiceStatusPaid},
		})
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}
