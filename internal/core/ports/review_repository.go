package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// ReviewRepository defines persistence for reviews. AppendReview allocates
// the id and creation time and never fails; recomputing the photographer's
// derived fields is the review service's job.
type ReviewRepository interface {
	AppendReview(ctx context.Context, bookingID, photographerID, clientID string, rating int, comment string) domain.Review
	ReviewsByPhotographer(ctx context.Context, photographerID string) []domain.Review
	ReviewsByClient(ctx context.Context, clientID string) []domain.Review
}
