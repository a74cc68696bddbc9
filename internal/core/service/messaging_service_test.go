package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
	"github.com/picmatch/marketplace/internal/infrastructure/memory"
)

func messagingFixture(t *testing.T) (*MessagingService, *memory.Store) {
	t.Helper()
	store := memory.Seed()
	return NewMessagingService(store, store, store, store, zerolog.Nop()), store
}

func TestPost_AppendsWithTimestamp(t *testing.T) {
	svc, store := messagingFixture(t)
	ctx := context.Background()

	m, err := svc.Post(ctx, ports.PostMessageInput{
		BookingID: "b1",
		From:      domain.FromClient,
		Content:   "See you soon!",
	})
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if m.ID != "m3" || m.Timestamp.IsZero() {
		t.Fatalf("message = %+v", m)
	}
	if got := store.MessagesByBooking(ctx, "b1"); len(got) != 3 {
		t.Fatalf("thread length = %d, want 3", len(got))
	}
}

func TestPost_UnknownBooking_Tolerated(t *testing.T) {
	svc, store := messagingFixture(t)
	ctx := context.Background()

	if _, err := svc.Post(ctx, ports.PostMessageInput{
		BookingID: "b99", From: domain.FromPhotographer, Content: "hello?",
	}); err != nil {
		t.Fatalf("Post against unknown booking must not fail: %v", err)
	}
	if got := store.MessagesByBooking(ctx, "b99"); len(got) != 1 {
		t.Fatalf("message not recorded: %v", got)
	}
}

func TestPost_InvalidInput(t *testing.T) {
	svc, _ := messagingFixture(t)
	ctx := context.Background()

	tests := []ports.PostMessageInput{
		{BookingID: "b1", From: domain.FromClient, Content: ""},
		{BookingID: "b1", From: "system", Content: "hi"},
		{From: domain.FromClient, Content: "hi"},
	}
	for i, in := range tests {
		if _, err := svc.Post(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestThread_SortedWithPartyNames(t *testing.T) {
	svc, _ := messagingFixture(t)

	view, err := svc.Thread(context.Background(), "b1")
	if err != nil {
		t.Fatalf("Thread returned error: %v", err)
	}
	if view.PhotographerName != "Lena Carter" || view.ClientName != "Alice Johnson" {
		t.Fatalf("party names = %q / %q", view.PhotographerName, view.ClientName)
	}
	if len(view.Messages) != 2 || view.Messages[0].ID != "m1" || view.Messages[1].ID != "m2" {
		t.Fatalf("messages = %+v, want [m1 m2]", view.Messages)
	}
}

func TestThread_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	svc, _ := messagingFixture(t)
	ctx := context.Background()

	// Posted back to back; timestamps may well collide at clock resolution.
	var ids []string
	for i := 0; i < 5; i++ {
		m, err := svc.Post(ctx, ports.PostMessageInput{
			BookingID: "b2",
			From:      domain.FromClient,
			Content:   fmt.Sprintf("message %d", i),
		})
		if err != nil {
			t.Fatalf("Post: %v", err)
		}
		ids = append(ids, m.ID)
	}

	view, err := svc.Thread(ctx, "b2")
	if err != nil {
		t.Fatalf("Thread returned error: %v", err)
	}
	if len(view.Messages) != len(ids) {
		t.Fatalf("thread length = %d, want %d", len(view.Messages), len(ids))
	}
	for i, m := range view.Messages {
		if m.ID != ids[i] {
			t.Fatalf("thread order = %+v, want %v", view.Messages, ids)
		}
	}
}

func TestThread_UnknownBooking(t *testing.T) {
	svc, _ := messagingFixture(t)

	if _, err := svc.Thread(context.Background(), "b99"); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}
