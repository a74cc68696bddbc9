package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/ports"
)

// AdminService assembles the back-office overview.
type AdminService struct {
	overview      ports.OverviewRepository
	bookings      ports.BookingRepository
	photographers ports.PhotographerRepository
	users         ports.UserRepository
	log           zerolog.Logger
}

func NewAdminService(
	overview ports.OverviewRepository,
	bookings ports.BookingRepository,
	photographers ports.PhotographerRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		overview:      overview,
		bookings:      bookings,
		photographers: photographers,
		users:         users,
		log:           log,
	}
}

// Overview returns collection counts, every booking joined with its party
// and package names, and per-client booking totals.
func (s *AdminService) Overview(ctx context.Context) *ports.AdminOverview {
	out := &ports.AdminOverview{Counts: s.overview.Counts(ctx)}

	bookings := s.bookings.ListBookings(ctx)
	for _, b := range bookings {
		view := ports.AdminBookingView{Booking: b}
		if p, ok := s.photographers.FindPhotographer(ctx, b.PhotographerID); ok {
			view.PhotographerName = p.Name
			if pkg, ok := p.PackageByID(b.PackageID); ok {
				view.PackageName = pkg.Name
			}
		}
		if c, ok := s.users.FindClient(ctx, b.ClientID); ok {
			view.ClientName = c.Name
		}
		out.Bookings = append(out.Bookings, view)
	}

	for _, c := range s.users.ListClients(ctx) {
		count := 0
		for _, b := range bookings {
			if b.ClientID == c.ID {
				count++
			}
		}
		out.Clients = append(out.Clients, ports.ClientActivity{Client: c, BookingCount: count})
	}
	return out
}
