package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
	"github.com/picmatch/marketplace/internal/infrastructure/memory"
)

// TestBookingLifecycle walks the full marketplace story on the seeded
// store: book, pay, chat, review, and check every side effect.
func TestBookingLifecycle(t *testing.T) {
	store := memory.Seed()
	log := zerolog.Nop()
	auth := NewAuthService(store, log)
	bookings := NewBookingService(store, store, store, log)
	messaging := NewMessagingService(store, store, store, store, log)
	reviews := NewReviewService(store, store, store, log)
	payments := NewPaymentService(store, store, log)
	ctx := context.Background()

	session, err := auth.Login(ctx, "alice@picmatch.test", "client123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	b, err := bookings.Create(ctx, ports.CreateBookingInput{
		PhotographerID: "p1",
		ClientID:       session.ID,
		PackageID:      "pkg1",
		Date:           "2025-12-10",
		TotalPrice:     1500,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if b.Status != domain.BookingPending || b.TotalPrice != 1500 {
		t.Fatalf("booking = %+v, want pending/1500", b)
	}

	if _, err := payments.Process(ctx, ports.ProcessPaymentInput{
		BookingID: b.ID, Outcome: domain.PaymentSuccess, Amount: b.TotalPrice,
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}
	paid, err := bookings.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if paid.Status != domain.BookingConfirmed {
		t.Fatalf("status after payment = %q, want confirmed", paid.Status)
	}

	// A later failed attempt leaves the confirmed booking alone.
	if _, err := payments.Process(ctx, ports.ProcessPaymentInput{
		BookingID: b.ID, Outcome: domain.PaymentFailure, Amount: b.TotalPrice,
	}); err != nil {
		t.Fatalf("failed payment: %v", err)
	}
	still, _ := bookings.Get(ctx, b.ID)
	if still.Status != domain.BookingConfirmed {
		t.Fatalf("status after failed payment = %q, want confirmed", still.Status)
	}

	for _, content := range []string{"Thanks for confirming!", "See you on the day."} {
		if _, err := messaging.Post(ctx, ports.PostMessageInput{
			BookingID: b.ID, From: domain.FromClient, Content: content,
		}); err != nil {
			t.Fatalf("post: %v", err)
		}
	}
	thread, err := messaging.Thread(ctx, b.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread.Messages) != 2 || thread.Messages[0].Content != "Thanks for confirming!" {
		t.Fatalf("thread = %+v", thread.Messages)
	}

	// p1 has one seeded 5-star review; a second 5 keeps the mean at 5.0
	// over 2 reviews.
	if _, err := reviews.Submit(ctx, ports.SubmitReviewInput{
		BookingID:      b.ID,
		PhotographerID: "p1",
		ClientID:       session.ID,
		Rating:         5,
		Comment:        "Great!",
	}); err != nil {
		t.Fatalf("review: %v", err)
	}
	p1, _ := store.FindPhotographer(ctx, "p1")
	if p1.Rating != 5.0 || p1.ReviewCount != 2 {
		t.Fatalf("p1 aggregates = %.1f/%d, want 5.0/2", p1.Rating, p1.ReviewCount)
	}
}
