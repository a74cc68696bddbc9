package memory

import (
	"time"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// Seed returns a store loaded with the fixed sample records the demo ships
// with. The dataset is reseeded on every start; nothing survives a restart.
func Seed() *Store {
	s := &Store{
		photographers: seedPhotographers(),
		clients: []domain.Client{
			{ID: "c1", Name: "Alice Johnson", Email: "alice@picmatch.test", Password: "client123"},
			{ID: "c2", Name: "David Kim", Email: "david@picmatch.test", Password: "client123"},
		},
		admins: []domain.Admin{
			{ID: "a1", Name: "Site Admin", Email: "admin@picmatch.test", Password: "admin123"},
		},
		bookings: []domain.Booking{
			{ID: "b1", PhotographerID: "p1", ClientID: "c1", PackageID: "pkg1", Date: "2025-12-10", Status: domain.BookingConfirmed, TotalPrice: 1500},
			{ID: "b2", PhotographerID: "p2", ClientID: "c2", PackageID: "pkg3", Date: "2025-12-20", Status: domain.BookingPending, TotalPrice: 1200},
		},
		messages: []domain.Message{
			{ID: "m1", BookingID: "b1", From: domain.FromClient, Content: "Hi Lena! Excited for our wedding shoot. Do you have sample timelines?", Timestamp: ts("2025-11-20T10:00:00Z")},
			{ID: "m2", BookingID: "b1", From: domain.FromPhotographer, Content: "Hi Alice! Absolutely, I can share a sample timeline later today.", Timestamp: ts("2025-11-20T10:05:00Z")},
		},
		reviews: []domain.Review{
			{ID: "r1", BookingID: "b1", PhotographerID: "p1", ClientID: "c1", Rating: 5, Comment: "Amazing experience, beautiful photos and very professional!", CreatedAt: ts("2025-11-22T12:00:00Z")},
		},
		payments: []domain.PaymentResult{
			{ID: "pay1", BookingID: "b1", Status: domain.PaymentSuccess, Amount: 1500, Timestamp: ts("2025-11-22T11:00:00Z")},
		},
	}

	// Counters start past the seeded records and only ever move forward.
	s.nextPhotographer = len(s.photographers) + 1
	s.nextClient = len(s.clients) + 1
	s.nextAdmin = len(s.admins) + 1
	s.nextBooking = len(s.bookings) + 1
	s.nextMessage = len(s.messages) + 1
	s.nextReview = len(s.reviews) + 1
	s.nextPayment = len(s.payments) + 1
	return s
}

func seedPhotographers() []domain.Photographer {
	return []domain.Photographer{
		{
			ID:          "p1",
			Name:        "Lena Carter",
			Email:       "lena@picmatch.test",
			Password:    "photo123",
			City:        "New York",
			Styles:      []domain.Style{domain.StyleWedding, domain.StylePortrait},
			PriceRange:  domain.PriceRange{Min: 500, Max: 2500},
			Rating:      4.8,
			ReviewCount: 42,
			Bio:         "Wedding and portrait photographer focused on natural light and candid emotions.",
			Portfolio: []domain.PortfolioItem{
				{ID: "pf1", URL: "https://picsum.photos/seed/p1a/600/400", Title: "Central Park Wedding"},
				{ID: "pf2", URL: "https://picsum.photos/seed/p1b/600/400", Title: "City Rooftop Session"},
			},
			Packages: []domain.Package{
				{ID: "pkg1", Name: "Classic Wedding", Description: "6 hours coverage, 300+ edited photos, online gallery.", Price: 1500, DurationHours: 6},
				{ID: "pkg2", Name: "Engagement Portraits", Description: "2 hours session, 50 edited photos, 2 locations.", Price: 600, DurationHours: 2},
			},
			Availability: []string{"2025-12-10", "2025-12-15", "2026-01-05"},
		},
		{
			ID:          "p2",
			Name:        "Marco Silva",
			Email:       "marco@picmatch.test",
			Password:    "photo123",
			City:        "Los Angeles",
			Styles:      []domain.Style{domain.StyleFashion, domain.StyleEvent},
			PriceRange:  domain.PriceRange{Min: 400, Max: 2000},
			Rating:      4.6,
			ReviewCount: 31,
			Bio:         "Fashion and event photographer with a cinematic style.",
			Portfolio: []domain.PortfolioItem{
				{ID: "pf3", URL: "https://picsum.photos/seed/p2a/600/400", Title: "Runway Show"},
				{ID: "pf4", URL: "https://picsum.photos/seed/p2b/600/400", Title: "Editorial Shoot"},
			},
			Packages: []domain.Package{
				{ID: "pkg3", Name: "Event Coverage", Description: "4 hours coverage, highlights gallery delivered in 48h.", Price: 1200, DurationHours: 4},
				{ID: "pkg4", Name: "Lookbook Session", Description: "Half-day studio session, 10 fully retouched images.", Price: 900, DurationHours: 4},
			},
		},
		{
			ID:          "p3",
			Name:        "Sara Nguyen",
			Email:       "sara@picmatch.test",
			Password:    "photo123",
			City:        "Chicago",
			Styles:      []domain.Style{domain.StylePortrait, domain.StyleFashion},
			PriceRange:  domain.PriceRange{Min: 300, Max: 1500},
			Rating:      4.9,
			ReviewCount: 18,
			Bio:         "Portrait and fashion photographer with a minimal, editorial look.",
			Portfolio: []domain.PortfolioItem{
				{ID: "pf5", URL: "https://picsum.photos/seed/p3a/600/400", Title: "Studio Portrait"},
				{ID: "pf6", URL: "https://picsum.photos/seed/p3b/600/400", Title: "Street Fashion"},
			},
			Packages: []domain.Package{
				{ID: "pkg5", Name: "Portrait Session", Description: "1.5 hour session, 20 edited images, indoor or outdoor.", Price: 450, DurationHours: 1.5},
				{ID: "pkg6", Name: "Lookbook Day", Description: "Full-day shoot for brands with up to 4 looks.", Price: 1600, DurationHours: 8},
			},
			Availability: []string{"2026-01-12", "2026-01-20", "2026-02-10"},
		},
		{
			ID:          "p4",
			Name:        "Omar Haddad",
			Email:       "omar@picmatch.test",
			Password:    "photo123",
			City:        "Dubai",
			Styles:      []domain.Style{domain.StyleEvent, domain.StyleWedding},
			PriceRange:  domain.PriceRange{Min: 700, Max: 3000},
			Rating:      4.7,
			ReviewCount: 27,
			Bio:         "Event and wedding photographer capturing vibrant stories across the city.",
			Portfolio: []domain.PortfolioItem{
				{ID: "pf7", URL: "https://picsum.photos/seed/p4a/600/400", Title: "Destination Wedding"},
				{ID: "pf8", URL: "https://picsum.photos/seed/p4b/600/400", Title: "Corporate Gala"},
			},
			Packages: []domain.Package{
				{ID: "pkg7", Name: "Premium Wedding", Description: "10 hours coverage, 500+ edited images, highlight slideshow.", Price: 2800, DurationHours: 10},
				{ID: "pkg8", Name: "Corporate Event", Description: "4 hours coverage, event highlights ready in 24h.", Price: 1800, DurationHours: 4},
			},
			Availability: []string{"2025-12-30", "2026-01-08", "2026-01-22"},
		},
		{
			ID:          "p5",
			Name:        "Maya Rossi",
			Email:       "maya@picmatch.test",
			Password:    "photo123",
			City:        "Rome",
			Styles:      []domain.Style{domain.StyleWedding, domain.StyleLandscape},
			PriceRange:  domain.PriceRange{Min: 500, Max: 2200},
			Rating:      4.5,
			ReviewCount: 15,
			Bio:         "Wedding and travel photographer in love with natural light and historic streets.",
			Portfolio: []domain.PortfolioItem{
				{ID: "pf9", URL: "https://picsum.photos/seed/p5a/600/400", Title: "Old Town Wedding"},
				{ID: "pf10", URL: "https://picsum.photos/seed/p5b/600/400", Title: "Sunset Over City"},
			},
			Packages: []domain.Package{
				{ID: "pkg9", Name: "Intimate Wedding", Description: "5 hours coverage for small celebrations and elopements.", Price: 1300, DurationHours: 5},
				{ID: "pkg10", Name: "Couple Session", Description: "1 hour session in a scenic location, 30 edited photos.", Price: 400, DurationHours: 1},
			},
			Availability: []string{"2026-02-05", "2026-02-18", "2026-03-01"},
		},
	}
}

func ts(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic("memory: bad seed timestamp: " + v)
	}
	return t
}
