// Package memory implements the in-memory domain store: the authoritative
// object graph holding every collection for the lifetime of the process.
// Mutators are permissive by design: they append unconditionally and never
// fail, tolerating references to absent parent records. A single mutex
// serializes access so the store can be shared by concurrent callers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// Store holds all seven collections plus one monotonic id counter per
// entity kind. Counters never shrink, so ids stay unique even if records
// are ever removed.
type Store struct {
	mu sync.Mutex

	photographers []domain.Photographer
	clients       []domain.Client
	admins        []domain.Admin
	bookings      []domain.Booking
	messages      []domain.Message
	reviews       []domain.Review
	payments      []domain.PaymentResult

	nextPhotographer int
	nextClient       int
	nextAdmin        int
	nextBooking      int
	nextMessage      int
	nextReview       int
	nextPayment      int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		nextPhotographer: 1,
		nextClient:       1,
		nextAdmin:        1,
		nextBooking:      1,
		nextMessage:      1,
		nextReview:       1,
		nextPayment:      1,
	}
}

// --- users -----------------------------------------------------------------

func (s *Store) AppendClient(_ context.Context, c domain.Client) domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = fmt.Sprintf("c%d", s.nextClient)
	s.nextClient++
	s.clients = append(s.clients, c)
	return c
}

func (s *Store) AppendPhotographer(_ context.Context, p domain.Photographer) domain.Photographer {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = fmt.Sprintf("p%d", s.nextPhotographer)
	s.nextPhotographer++
	s.photographers = append(s.photographers, clonePhotographer(p))
	return p
}

func (s *Store) AppendAdmin(_ context.Context, a domain.Admin) domain.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = fmt.Sprintf("a%d", s.nextAdmin)
	s.nextAdmin++
	s.admins = append(s.admins, a)
	return a
}

func (s *Store) FindClient(_ context.Context, id string) (domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

func (s *Store) FindAdmin(_ context.Context, id string) (domain.Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Admin{}, false
}

func (s *Store) ClientByEmail(_ context.Context, email string) (domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return domain.Client{}, false
}

func (s *Store) PhotographerByEmail(_ context.Context, email string) (domain.Photographer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.photographers {
		if strings.EqualFold(p.Email, email) {
			return clonePhotographer(p), true
		}
	}
	return domain.Photographer{}, false
}

func (s *Store) AdminByEmail(_ context.Context, email string) (domain.Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return domain.Admin{}, false
}

func (s *Store) EmailExists(_ context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return true
		}
	}
	for _, p := range s.photographers {
		if strings.EqualFold(p.Email, email) {
			return true
		}
	}
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) ListClients(_ context.Context) []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// --- photographers ---------------------------------------------------------

func (s *Store) FindPhotographer(_ context.Context, id string) (domain.Photographer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.photographers {
		if p.ID == id {
			return clonePhotographer(p), true
		}
	}
	return domain.Photographer{}, false
}

func (s *Store) ListPhotographers(_ context.Context, f ports.PhotographerFilter) []domain.Photographer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Photographer
	for _, p := range s.photographers {
		if f.City != "" && p.City != f.City {
			continue
		}
		if f.Style != "" && !p.HasStyle(f.Style) {
			continue
		}
		if f.MaxBudget > 0 && p.PriceRange.Max > f.MaxBudget {
			continue
		}
		out = append(out, clonePhotographer(p))
	}
	return out
}

func (s *Store) Cities(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{}, len(s.photographers))
	var cities []string
	for _, p := range s.photographers {
		if _, ok := seen[p.City]; ok {
			continue
		}
		seen[p.City] = struct{}{}
		cities = append(cities, p.City)
	}
	sort.Strings(cities)
	return cities
}

func (s *Store) UpdatePhotographerAggregates(_ context.Context, id string, rating float64, reviewCount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photographers {
		if s.photographers[i].ID == id {
			s.photographers[i].Rating = rating
			s.photographers[i].ReviewCount = reviewCount
			return true
		}
	}
	return false
}

// --- bookings --------------------------------------------------------------

func (s *Store) CreateBooking(_ context.Context, photographerID, clientID, packageID, date string, totalPrice float64) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := domain.Booking{
		ID:             fmt.Sprintf("b%d", s.nextBooking),
		PhotographerID: photographerID,
		ClientID:       clientID,
		PackageID:      packageID,
		Date:           date,
		Status:         domain.BookingPending,
		TotalPrice:     totalPrice,
	}
	s.nextBooking++
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) FindBooking(_ context.Context, id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

func (s *Store) BookingsByClient(_ context.Context, clientID string) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) BookingsByPhotographer(_ context.Context, photographerID string) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.PhotographerID == photographerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) ListBookings(_ context.Context) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) SetBookingStatus(_ context.Context, id string, status domain.BookingStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return true
		}
	}
	return false
}

// --- messages --------------------------------------------------------------

func (s *Store) AppendMessage(_ context.Context, bookingID string, from domain.MessageSender, content string) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := domain.Message{
		ID:        fmt.Sprintf("m%d", s.nextMessage),
		BookingID: bookingID,
		From:      from,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	s.nextMessage++
	s.messages = append(s.messages, m)
	return m
}

func (s *Store) MessagesByBooking(_ context.Context, bookingID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Message
	for _, m := range s.messages {
		if m.BookingID == bookingID {
			out = append(out, m)
		}
	}
	return out
}

// --- reviews ---------------------------------------------------------------

func (s *Store) AppendReview(_ context.Context, bookingID, photographerID, clientID string, rating int, comment string) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Review{
		ID:             fmt.Sprintf("r%d", s.nextReview),
		BookingID:      bookingID,
		PhotographerID: photographerID,
		ClientID:       clientID,
		Rating:         rating,
		Comment:        comment,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextReview++
	s.reviews = append(s.reviews, r)
	return r
}

func (s *Store) ReviewsByPhotographer(_ context.Context, photographerID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Review
	for _, r := range s.reviews {
		if r.PhotographerID == photographerID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) ReviewsByClient(_ context.Context, clientID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Review
	for _, r := range s.reviews {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out
}

// --- payments --------------------------------------------------------------

func (s *Store) RecordPayment(_ context.Context, bookingID string, status domain.PaymentOutcome, amount float64, transactionRef string) domain.PaymentResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.PaymentResult{
		ID:             fmt.Sprintf("pay%d", s.nextPayment),
		BookingID:      bookingID,
		Status:         status,
		Amount:         amount,
		TransactionRef: transactionRef,
		Timestamp:      time.Now().UTC(),
	}
	s.nextPayment++
	s.payments = append(s.payments, p)
	return p
}

func (s *Store) PaymentsByBooking(_ context.Context, bookingID string) []domain.PaymentResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PaymentResult
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out
}

// --- overview --------------------------------------------------------------

func (s *Store) Counts(_ context.Context) ports.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.Counts{
		Photographers: len(s.photographers),
		Clients:       len(s.clients),
		Admins:        len(s.admins),
		Bookings:      len(s.bookings),
		Messages:      len(s.messages),
		Reviews:       len(s.reviews),
		Payments:      len(s.payments),
	}
}

// clonePhotographer deep-copies the slice-valued fields so callers can not
// mutate stored state through a returned record.
func clonePhotographer(p domain.Photographer) domain.Photographer {
	clone := p
	clone.Styles = append([]domain.Style(nil), p.Styles...)
	clone.Portfolio = append([]domain.PortfolioItem(nil), p.Portfolio...)
	clone.Packages = append([]domain.Package(nil), p.Packages...)
	if p.Availability != nil {
		clone.Availability = append([]string(nil), p.Availability...)
	}
	return clone
}
