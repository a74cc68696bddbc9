package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// CatalogService serves the public browse/search surface.
type CatalogService struct {
	photographers ports.PhotographerRepository
	reviews       ports.ReviewRepository
	log           zerolog.Logger
}

func NewCatalogService(photographers ports.PhotographerRepository, reviews ports.ReviewRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{photographers: photographers, reviews: reviews, log: log}
}

// Search lists photographers matching the filter. An empty filter lists
// everyone.
func (s *CatalogService) Search(ctx context.Context, filter ports.PhotographerFilter) []domain.Photographer {
	return s.photographers.ListPhotographers(ctx, filter)
}

// Cities returns the distinct photographer cities, sorted.
func (s *CatalogService) Cities(ctx context.Context) []string {
	return s.photographers.Cities(ctx)
}

// Profile returns the photographer's public listing with their reviews.
func (s *CatalogService) Profile(ctx context.Context, photographerID string) (*ports.PhotographerProfile, error) {
	p, ok := s.photographers.FindPhotographer(ctx, photographerID)
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", photographerID, domain.ErrPhotographerNotFound)
	}
	return &ports.PhotographerProfile{
		Photographer: p,
		Reviews:      s.reviews.ReviewsByPhotographer(ctx, photographerID),
	}, nil
}
