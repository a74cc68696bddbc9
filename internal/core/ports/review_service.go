package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// SubmitReviewInput carries a new review. Comment may be empty.
type SubmitReviewInput struct {
	BookingID      string `validate:"required"`
	PhotographerID string `validate:"required"`
	ClientID       string `validate:"required"`
	Rating         int    `validate:"min=1,max=5"`
	Comment        string
}

// ClientReviewView is a review joined with the reviewer's name for the
// photographer dashboard.
type ClientReviewView struct {
	Review     domain.Review
	ClientName string
}

// ReviewService records reviews and maintains the photographer's derived
// rating and review count.
type ReviewService interface {
	Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error)
	ForPhotographer(ctx context.Context, photographerID string) []ClientReviewView
	ForClient(ctx context.Context, clientID string) []domain.Review
}
