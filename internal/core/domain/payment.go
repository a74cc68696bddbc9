package domain

import "time"

// PaymentOutcome is the simulated result of a payment attempt.
type PaymentOutcome string

const (
	PaymentSuccess PaymentOutcome = "success"
	PaymentFailure PaymentOutcome = "failure"
)

// PaymentResult records a single simulated payment attempt against a
// booking. Only a success outcome advances the booking's status.
type PaymentResult struct {
	ID             string         `json:"id"`
	BookingID      string         `json:"booking_id"`
	Status         PaymentOutcome `json:"status"`
	Amount         float64        `json:"amount"`
	TransactionRef string         `json:"transaction_ref"`
	Timestamp      time.Time      `json:"timestamp"`
}
