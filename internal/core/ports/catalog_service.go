package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// PhotographerProfile is the full public view of a photographer together
// with their reviews.
type PhotographerProfile struct {
	Photographer domain.Photographer
	Reviews      []domain.Review
}

// CatalogService is the browse/search surface of the marketplace.
type CatalogService interface {
	Search(ctx context.Context, filter PhotographerFilter) []domain.Photographer
	Cities(ctx context.Context) []string
	Profile(ctx context.Context, photographerID string) (*PhotographerProfile, error)
}
