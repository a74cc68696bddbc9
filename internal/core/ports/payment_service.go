package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// ProcessPaymentInput carries a simulated payment attempt.
type ProcessPaymentInput struct {
	BookingID string                `validate:"required"`
	Outcome   domain.PaymentOutcome `validate:"required,oneof=success failure"`
	Amount    float64               `validate:"gte=0"`
}

// PaymentService records payment attempts and advances the booking to
// confirmed on a successful payment against a pending booking.
type PaymentService interface {
	Process(ctx context.Context, input ProcessPaymentInput) (*domain.PaymentResult, error)
	History(ctx context.Context, bookingID string) []domain.PaymentResult
}
