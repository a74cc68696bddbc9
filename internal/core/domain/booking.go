package domain

import "errors"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Completed and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking links a client to one of a photographer's packages on a date.
// Date is kept as the calendar string the caller supplied (YYYY-MM-DD).
type Booking struct {
	ID             string        `json:"id"`
	PhotographerID string        `json:"photographer_id"`
	ClientID       string        `json:"client_id"`
	PackageID      string        `json:"package_id"`
	Date           string        `json:"date"`
	Status         BookingStatus `json:"status"`
	TotalPrice     float64       `json:"total_price"`
}
