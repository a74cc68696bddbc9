package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// PhotographerFilter carries the catalog search criteria. Zero values mean
// "no filter" for the corresponding field.
type PhotographerFilter struct {
	City      string       // exact match
	Style     domain.Style // set membership
	MaxBudget float64      // keep photographers whose price range max is within budget
}

// PhotographerRepository defines read and derived-field operations on the
// photographer collection.
type PhotographerRepository interface {
	FindPhotographer(ctx context.Context, id string) (domain.Photographer, bool)
	ListPhotographers(ctx context.Context, filter PhotographerFilter) []domain.Photographer
	// Cities returns the distinct cities of all photographers, sorted.
	Cities(ctx context.Context) []string
	// UpdatePhotographerAggregates overwrites the derived rating and review
	// count. Reports whether the photographer exists.
	UpdatePhotographerAggregates(ctx context.Context, id string, rating float64, reviewCount int) bool
}
