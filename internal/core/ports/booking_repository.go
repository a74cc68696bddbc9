package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// BookingRepository defines persistence for bookings. CreateBooking always
// succeeds: it allocates an id, starts the booking in the pending state and
// appends it without checking that the referenced photographer, client or
// package exist.
type BookingRepository interface {
	CreateBooking(ctx context.Context, photographerID, clientID, packageID, date string, totalPrice float64) domain.Booking
	FindBooking(ctx context.Context, id string) (domain.Booking, bool)
	BookingsByClient(ctx context.Context, clientID string) []domain.Booking
	BookingsByPhotographer(ctx context.Context, photographerID string) []domain.Booking
	ListBookings(ctx context.Context) []domain.Booking
	// SetBookingStatus overwrites the booking's status. Reports whether the
	// booking exists. Transition rules are the caller's responsibility.
	SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) bool
}
