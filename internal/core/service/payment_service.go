package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// PaymentService simulates a payment provider: every attempt is recorded
// with a generated transaction reference, and a successful attempt against
// a pending booking confirms it.
type PaymentService struct {
	payments ports.PaymentRepository
	bookings ports.BookingRepository
	v        *validator.Validate
	log      zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, bookings ports.BookingRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, bookings: bookings, v: validator.New(), log: log}
}

// Process records the payment attempt. On a success outcome the referenced
// booking is advanced pending → confirmed; bookings in any other state are
// left untouched, as is a booking id that references nothing. A failure
// outcome never mutates the booking.
func (s *PaymentService) Process(ctx context.Context, input ports.ProcessPaymentInput) (*domain.PaymentResult, error) {
	if err := checkInput(s.v, input); err != nil {
		return nil, err
	}

	p := s.payments.RecordPayment(ctx, input.BookingID, input.Outcome, input.Amount, uuid.New().String())

	if input.Outcome == domain.PaymentSuccess {
		b, ok := s.bookings.FindBooking(ctx, input.BookingID)
		switch {
		case !ok:
			s.log.Debug().Str("booking_id", input.BookingID).Msg("payment references unknown booking")
		case b.Status.CanTransitionTo(domain.BookingConfirmed):
			s.bookings.SetBookingStatus(ctx, b.ID, domain.BookingConfirmed)
			s.log.Info().Str("booking_id", b.ID).Msg("booking confirmed")
		default:
			s.log.Warn().
				Str("booking_id", b.ID).
				Str("status", string(b.Status)).
				Msg("successful payment against non-pending booking, status unchanged")
		}
	}

	s.log.Info().
		Str("payment_id", p.ID).
		Str("booking_id", p.BookingID).
		Str("outcome", string(p.Status)).
		Float64("amount", p.Amount).
		Msg("payment recorded")
	return &p, nil
}

// History lists the payment attempts recorded against a booking.
func (s *PaymentService) History(ctx context.Context, bookingID string) []domain.PaymentResult {
	return s.payments.PaymentsByBooking(ctx, bookingID)
}
