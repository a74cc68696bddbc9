package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// AdminBookingView is a booking joined with every name the admin table shows.
type AdminBookingView struct {
	Booking          domain.Booking
	PhotographerName string
	ClientName       string
	PackageName      string
}

// ClientActivity is a client together with how many bookings they have made.
type ClientActivity struct {
	Client       domain.Client
	BookingCount int
}

// AdminOverview is the full admin dashboard payload.
type AdminOverview struct {
	Counts   Counts
	Bookings []AdminBookingView
	Clients  []ClientActivity
}

// AdminService serves the back-office overview.
type AdminService interface {
	Overview(ctx context.Context) *AdminOverview
}
