package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// ReviewService records reviews and keeps the photographer's derived
// rating and review count in step with the review collection.
type ReviewService struct {
	reviews       ports.ReviewRepository
	photographers ports.PhotographerRepository
	users         ports.UserRepository
	v             *validator.Validate
	log           zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	photographers ports.PhotographerRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:       reviews,
		photographers: photographers,
		users:         users,
		v:             validator.New(),
		log:           log,
	}
}

// Submit appends the review, then recomputes the photographer's rating and
// review count from scratch over every review referencing them. When the
// photographer does not exist the review is still recorded and the
// recompute is skipped.
func (s *ReviewService) Submit(ctx context.Context, input ports.SubmitReviewInput) (*domain.Review, error) {
	if err := checkInput(s.v, input); err != nil {
		return nil, err
	}

	r := s.reviews.AppendReview(ctx, input.BookingID, input.PhotographerID, input.ClientID, input.Rating, input.Comment)

	if _, ok := s.photographers.FindPhotographer(ctx, input.PhotographerID); !ok {
		s.log.Debug().Str("photographer_id", input.PhotographerID).Msg("review references unknown photographer, aggregates not updated")
		return &r, nil
	}

	all := s.reviews.ReviewsByPhotographer(ctx, input.PhotographerID)
	rating := averageRating(all)
	s.photographers.UpdatePhotographerAggregates(ctx, input.PhotographerID, rating, len(all))

	s.log.Info().
		Str("review_id", r.ID).
		Str("photographer_id", input.PhotographerID).
		Float64("rating", rating).
		Int("review_count", len(all)).
		Msg("review recorded")
	return &r, nil
}

// ForPhotographer lists a photographer's reviews joined with the
// reviewers' names.
func (s *ReviewService) ForPhotographer(ctx context.Context, photographerID string) []ports.ClientReviewView {
	var out []ports.ClientReviewView
	for _, r := range s.reviews.ReviewsByPhotographer(ctx, photographerID) {
		view := ports.ClientReviewView{Review: r}
		if c, ok := s.users.FindClient(ctx, r.ClientID); ok {
			view.ClientName = c.Name
		}
		out = append(out, view)
	}
	return out
}

// ForClient lists the reviews a client has written.
func (s *ReviewService) ForClient(ctx context.Context, clientID string) []domain.Review {
	return s.reviews.ReviewsByClient(ctx, clientID)
}

// averageRating is the arithmetic mean rounded to one decimal, or 0 when
// there are no reviews.
func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
