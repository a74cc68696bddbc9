package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// MessageRepository defines persistence for chat messages. Threads are
// append-only; AppendMessage stamps the message with the capture time and
// never fails, even when the booking id references nothing.
type MessageRepository interface {
	AppendMessage(ctx context.Context, bookingID string, from domain.MessageSender, content string) domain.Message
	// MessagesByBooking returns the booking's messages in insertion order.
	MessagesByBooking(ctx context.Context, bookingID string) []domain.Message
}
