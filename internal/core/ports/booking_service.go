package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// CreateBookingInput carries everything needed to create a booking. The
// total price is caller-supplied; use Quote to derive it from a package.
type CreateBookingInput struct {
	PhotographerID string  `validate:"required"`
	ClientID       string  `validate:"required"`
	PackageID      string  `validate:"required"`
	Date           string  `validate:"required"`
	TotalPrice     float64 `validate:"gte=0"`
}

// ClientBookingView is a booking joined with the names a client's dashboard
// shows. Join fields stay empty when the referenced records do not exist.
type ClientBookingView struct {
	Booking          domain.Booking
	PhotographerName string
	PackageName      string
	PackagePrice     float64
}

// PhotographerBookingView is a booking joined for a photographer's dashboard.
type PhotographerBookingView struct {
	Booking     domain.Booking
	ClientName  string
	PackageName string
}

// BookingService creates bookings and serves the dashboard booking lists.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// Quote returns the price of the photographer's package.
	Quote(ctx context.Context, photographerID, packageID string) (float64, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	ForClient(ctx context.Context, clientID string) []ClientBookingView
	ForPhotographer(ctx context.Context, photographerID string) []PhotographerBookingView
}
