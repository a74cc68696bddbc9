package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
	"github.com/picmatch/marketplace/internal/infrastructure/memory"
)

func paymentFixture(t *testing.T) (*PaymentService, *memory.Store) {
	t.Helper()
	store := memory.Seed()
	return NewPaymentService(store, store, zerolog.Nop()), store
}

func TestProcess_SuccessConfirmsPendingBooking(t *testing.T) {
	svc, store := paymentFixture(t)
	ctx := context.Background()

	// b2 is seeded pending.
	p, err := svc.Process(ctx, ports.ProcessPaymentInput{
		BookingID: "b2", Outcome: domain.PaymentSuccess, Amount: 1200,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if p.Status != domain.PaymentSuccess || p.Amount != 1200 {
		t.Fatalf("payment = %+v", p)
	}
	if p.TransactionRef == "" {
		t.Fatalf("payment has no transaction reference")
	}

	b, _ := store.FindBooking(ctx, "b2")
	if b.Status != domain.BookingConfirmed {
		t.Fatalf("b2 status = %q, want confirmed", b.Status)
	}
}

func TestProcess_FailureLeavesBookingUntouched(t *testing.T) {
	svc, store := paymentFixture(t)
	ctx := context.Background()

	if _, err := svc.Process(ctx, ports.ProcessPaymentInput{
		BookingID: "b2", Outcome: domain.PaymentFailure, Amount: 1200,
	}); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	b, _ := store.FindBooking(ctx, "b2")
	if b.Status != domain.BookingPending {
		t.Fatalf("b2 status = %q, want pending after failed payment", b.Status)
	}
	if got := store.PaymentsByBooking(ctx, "b2"); len(got) != 1 {
		t.Fatalf("failed payment not recorded: %v", got)
	}
}

func TestProcess_SuccessOnNonPendingBooking_NoStatusChange(t *testing.T) {
	svc, store := paymentFixture(t)
	ctx := context.Background()

	for _, status := range []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled} {
		store.SetBookingStatus(ctx, "b1", status)
		if _, err := svc.Process(ctx, ports.ProcessPaymentInput{
			BookingID: "b1", Outcome: domain.PaymentSuccess, Amount: 1500,
		}); err != nil {
			t.Fatalf("Process returned error: %v", err)
		}
		b, _ := store.FindBooking(ctx, "b1")
		if b.Status != status {
			t.Fatalf("terminal booking reverted: status = %q, want %q", b.Status, status)
		}
	}
}

func TestProcess_UnknownBooking_StillRecorded(t *testing.T) {
	svc, store := paymentFixture(t)
	ctx := context.Background()

	p, err := svc.Process(ctx, ports.ProcessPaymentInput{
		BookingID: "b99", Outcome: domain.PaymentSuccess, Amount: 10,
	})
	if err != nil {
		t.Fatalf("Process against unknown booking must not fail: %v", err)
	}
	if got := store.PaymentsByBooking(ctx, "b99"); len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("payment not recorded: %v", got)
	}
}

func TestProcess_InvalidOutcome(t *testing.T) {
	svc, _ := paymentFixture(t)

	_, err := svc.Process(context.Background(), ports.ProcessPaymentInput{
		BookingID: "b2", Outcome: "declined", Amount: 10,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestHistory(t *testing.T) {
	svc, _ := paymentFixture(t)
	ctx := context.Background()

	if _, err := svc.Process(ctx, ports.ProcessPaymentInput{BookingID: "b1", Outcome: domain.PaymentFailure, Amount: 1500}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	// Seeded pay1 plus the one above.
	if got := svc.History(ctx, "b1"); len(got) != 2 {
		t.Fatalf("history = %v, want 2 entries", got)
	}
}
