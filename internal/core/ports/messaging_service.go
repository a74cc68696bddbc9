package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// PostMessageInput carries a new chat message.
type PostMessageInput struct {
	BookingID string               `validate:"required"`
	From      domain.MessageSender `validate:"required,oneof=client photographer"`
	Content   string               `validate:"required"`
}

// ThreadView is a booking's chat thread with both party names resolved.
// Messages are sorted by timestamp ascending; equal timestamps keep
// insertion order.
type ThreadView struct {
	Booking          domain.Booking
	PhotographerName string
	ClientName       string
	Messages         []domain.Message
}

// MessagingService appends to and reads booking chat threads.
type MessagingService interface {
	Post(ctx context.Context, input PostMessageInput) (*domain.Message, error)
	Thread(ctx context.Context, bookingID string) (*ThreadView, error)
}
