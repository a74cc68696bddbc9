package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// PaymentRepository defines persistence for simulated payment attempts.
// RecordPayment appends unconditionally; advancing the booking status on a
// success outcome is the payment service's job.
type PaymentRepository interface {
	RecordPayment(ctx context.Context, bookingID string, status domain.PaymentOutcome, amount float64, transactionRef string) domain.PaymentResult
	PaymentsByBooking(ctx context.Context, bookingID string) []domain.PaymentResult
}
