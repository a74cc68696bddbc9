package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// MessagingService appends to and reads the two-party chat thread attached
// to a booking.
type MessagingService struct {
	messages      ports.MessageRepository
	bookings      ports.BookingRepository
	photographers ports.PhotographerRepository
	users         ports.UserRepository
	v             *validator.Validate
	log           zerolog.Logger
}

func NewMessagingService(
	messages ports.MessageRepository,
	bookings ports.BookingRepository,
	photographers ports.PhotographerRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *MessagingService {
	return &MessagingService{
		messages:      messages,
		bookings:      bookings,
		photographers: photographers,
		users:         users,
		v:             validator.New(),
		log:           log,
	}
}

// Post appends a message to the booking's thread. The message is recorded
// even when the booking id references nothing.
func (s *MessagingService) Post(ctx context.Context, input ports.PostMessageInput) (*domain.Message, error) {
	if err := checkInput(s.v, input); err != nil {
		return nil, err
	}
	if _, ok := s.bookings.FindBooking(ctx, input.BookingID); !ok {
		s.log.Debug().Str("booking_id", input.BookingID).Msg("message references unknown booking")
	}
	m := s.messages.AppendMessage(ctx, input.BookingID, input.From, input.Content)
	s.log.Info().Str("message_id", m.ID).Str("booking_id", m.BookingID).Str("from", string(m.From)).Msg("message posted")
	return &m, nil
}

// Thread returns the booking's messages sorted by timestamp ascending,
// with both party names resolved. The sort is stable so messages stamped
// in the same instant keep their insertion order.
func (s *MessagingService) Thread(ctx context.Context, bookingID string) (*ports.ThreadView, error) {
	b, ok := s.bookings.FindBooking(ctx, bookingID)
	if !ok {
		return nil, fmt.Errorf("thread %s: %w", bookingID, domain.ErrBookingNotFound)
	}

	view := &ports.ThreadView{Booking: b}
	if p, ok := s.photographers.FindPhotographer(ctx, b.PhotographerID); ok {
		view.PhotographerName = p.Name
	}
	if c, ok := s.users.FindClient(ctx, b.ClientID); ok {
		view.ClientName = c.Name
	}

	msgs := s.messages.MessagesByBooking(ctx, bookingID)
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	view.Messages = msgs
	return view, nil
}
