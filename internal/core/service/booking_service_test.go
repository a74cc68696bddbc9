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

func bookingFixture(t *testing.T) (*BookingService, *memory.Store) {
	t.Helper()
	store := memory.Seed()
	return NewBookingService(store, store, store, zerolog.Nop()), store
}

func TestCreate_StartsPending(t *testing.T) {
	svc, store := bookingFixture(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, ports.CreateBookingInput{
		PhotographerID: "p1",
		ClientID:       "c1",
		PackageID:      "pkg1",
		Date:           "2025-12-10",
		TotalPrice:     1500,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.Status != domain.BookingPending {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if b.TotalPrice != 1500 || b.ID != "b3" {
		t.Fatalf("booking = %+v", b)
	}
	if _, ok := store.FindBooking(ctx, b.ID); !ok {
		t.Fatalf("booking not stored")
	}
}

func TestCreate_UnknownReferences_Tolerated(t *testing.T) {
	svc, store := bookingFixture(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, ports.CreateBookingInput{
		PhotographerID: "p99",
		ClientID:       "c99",
		PackageID:      "pkg99",
		Date:           "2026-01-01",
		TotalPrice:     100,
	})
	if err != nil {
		t.Fatalf("Create with dangling references must not fail: %v", err)
	}
	if _, ok := store.FindBooking(ctx, b.ID); !ok {
		t.Fatalf("booking not stored")
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _ := bookingFixture(t)
	ctx := context.Background()

	tests := []ports.CreateBookingInput{
		{ClientID: "c1", PackageID: "pkg1", Date: "2025-12-10", TotalPrice: 100},
		{PhotographerID: "p1", ClientID: "c1", PackageID: "pkg1", Date: "2025-12-10", TotalPrice: -5},
	}
	for i, in := range tests {
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestQuote(t *testing.T) {
	svc, _ := bookingFixture(t)
	ctx := context.Background()

	price, err := svc.Quote(ctx, "p1", "pkg1")
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if price != 1500 {
		t.Fatalf("price = %v, want 1500", price)
	}

	if _, err := svc.Quote(ctx, "p99", "pkg1"); !errors.Is(err, domain.ErrPhotographerNotFound) {
		t.Fatalf("unknown photographer: err = %v", err)
	}
	// pkg3 belongs to p2, not p1.
	if _, err := svc.Quote(ctx, "p1", "pkg3"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("foreign package: err = %v", err)
	}
}

func TestForClient_Joins(t *testing.T) {
	svc, _ := bookingFixture(t)

	views := svc.ForClient(context.Background(), "c1")
	if len(views) != 1 {
		t.Fatalf("views = %+v, want the seeded booking", views)
	}
	v := views[0]
	if v.Booking.ID != "b1" || v.PhotographerName != "Lena Carter" || v.PackageName != "Classic Wedding" || v.PackagePrice != 1500 {
		t.Fatalf("view = %+v", v)
	}
}

func TestForPhotographer_Joins(t *testing.T) {
	svc, _ := bookingFixture(t)

	views := svc.ForPhotographer(context.Background(), "p2")
	if len(views) != 1 {
		t.Fatalf("views = %+v, want the seeded booking", views)
	}
	v := views[0]
	if v.Booking.ID != "b2" || v.ClientName != "David Kim" || v.PackageName != "Event Coverage" {
		t.Fatalf("view = %+v", v)
	}
}

func TestGet(t *testing.T) {
	svc, _ := bookingFixture(t)
	ctx := context.Background()

	b, err := svc.Get(ctx, "b1")
	if err != nil || b.ID != "b1" {
		t.Fatalf("Get(b1) = %+v, %v", b, err)
	}
	if _, err := svc.Get(ctx, "b99"); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("Get(b99): err = %v, want ErrBookingNotFound", err)
	}
}
