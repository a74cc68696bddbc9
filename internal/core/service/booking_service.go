package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// BookingService creates bookings and serves the dashboard booking lists.
type BookingService struct {
	bookings      ports.BookingRepository
	photographers ports.PhotographerRepository
	users         ports.UserRepository
	v             *validator.Validate
	log           zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	photographers ports.PhotographerRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:      bookings,
		photographers: photographers,
		users:         users,
		v:             validator.New(),
		log:           log,
	}
}

// Create appends a new booking in the pending state. The referenced
// photographer, client and package ids are taken on trust: a booking
// against records that do not exist is still created.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := checkInput(s.v, input); err != nil {
		return nil, err
	}

	if _, ok := s.photographers.FindPhotographer(ctx, input.PhotographerID); !ok {
		s.log.Debug().Str("photographer_id", input.PhotographerID).Msg("booking references unknown photographer")
	}

	b := s.bookings.CreateBooking(ctx, input.PhotographerID, input.ClientID, input.PackageID, input.Date, input.TotalPrice)
	s.log.Info().
		Str("booking_id", b.ID).
		Str("photographer_id", b.PhotographerID).
		Str("client_id", b.ClientID).
		Float64("total", b.TotalPrice).
		Msg("booking created")
	return &b, nil
}

// Quote returns the price of the photographer's package, for callers that
// derive the booking total from the selected package.
func (s *BookingService) Quote(ctx context.Context, photographerID, packageID string) (float64, error) {
	p, ok := s.photographers.FindPhotographer(ctx, photographerID)
	if !ok {
		return 0, fmt.Errorf("quote: %w", domain.ErrPhotographerNotFound)
	}
	pkg, ok := p.PackageByID(packageID)
	if !ok {
		return 0, fmt.Errorf("quote: package %s: %w", packageID, domain.ErrInvalidInput)
	}
	return pkg.Price, nil
}

// Get returns a single booking.
func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := s.bookings.FindBooking(ctx, bookingID)
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrBookingNotFound)
	}
	return &b, nil
}

// ForClient lists a client's bookings joined with the photographer and
// package names their dashboard shows.
func (s *BookingService) ForClient(ctx context.Context, clientID string) []ports.ClientBookingView {
	var out []ports.ClientBookingView
	for _, b := range s.bookings.BookingsByClient(ctx, clientID) {
		view := ports.ClientBookingView{Booking: b}
		if p, ok := s.photographers.FindPhotographer(ctx, b.PhotographerID); ok {
			view.PhotographerName = p.Name
			if pkg, ok := p.PackageByID(b.PackageID); ok {
				view.PackageName = pkg.Name
				view.PackagePrice = pkg.Price
			}
		}
		out = append(out, view)
	}
	return out
}

// ForPhotographer lists a photographer's bookings joined with client and
// package names.
func (s *BookingService) ForPhotographer(ctx context.Context, photographerID string) []ports.PhotographerBookingView {
	p, havePhotographer := s.photographers.FindPhotographer(ctx, photographerID)
	var out []ports.PhotographerBookingView
	for _, b := range s.bookings.BookingsByPhotographer(ctx, photographerID) {
		view := ports.PhotographerBookingView{Booking: b}
		if c, ok := s.users.FindClient(ctx, b.ClientID); ok {
			view.ClientName = c.Name
		}
		if havePhotographer {
			if pkg, ok := p.PackageByID(b.PackageID); ok {
				view.PackageName = pkg.Name
			}
		}
		out = append(out, view)
	}
	return out
}
