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

func catalogFixture(t *testing.T) *CatalogService {
	t.Helper()
	store := memory.Seed()
	return NewCatalogService(store, store, zerolog.Nop())
}

func TestSearch_ComposedFilters(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	all := svc.Search(ctx, ports.PhotographerFilter{})
	if len(all) != 5 {
		t.Fatalf("unfiltered search = %d results, want 5", len(all))
	}

	got := svc.Search(ctx, ports.PhotographerFilter{City: "Rome", Style: domain.StyleLandscape, MaxBudget: 2200})
	if len(got) != 1 || got[0].ID != "p5" {
		t.Fatalf("composed filter = %+v, want [p5]", got)
	}

	if got := svc.Search(ctx, ports.PhotographerFilter{City: "Rome", Style: domain.StylePortrait}); got != nil {
		t.Fatalf("contradictory filter = %+v, want none", got)
	}
}

func TestCities(t *testing.T) {
	svc := catalogFixture(t)

	cities := svc.Cities(context.Background())
	if len(cities) != 5 || cities[0] != "Chicago" || cities[4] != "Rome" {
		t.Fatalf("cities = %v", cities)
	}
}

func TestProfile(t *testing.T) {
	svc := catalogFixture(t)
	ctx := context.Background()

	profile, err := svc.Profile(ctx, "p1")
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Photographer.Name != "Lena Carter" {
		t.Fatalf("photographer = %+v", profile.Photographer)
	}
	if len(profile.Reviews) != 1 || profile.Reviews[0].ID != "r1" {
		t.Fatalf("reviews = %+v, want the seeded review", profile.Reviews)
	}

	if _, err := svc.Profile(ctx, "p99"); !errors.Is(err, domain.ErrPhotographerNotFound) {
		t.Fatalf("err = %v, want ErrPhotographerNotFound", err)
	}
}
