package domain

import "errors"

// Style categorises a photographer's work.
type Style string

const (
	StyleWedding   Style = "wedding"
	StylePortrait  Style = "portrait"
	StyleEvent     Style = "event"
	StyleFashion   Style = "fashion"
	StyleLandscape Style = "landscape"
)

var ErrPhotographerNotFound = errors.New("photographer not found")

// PriceRange is the advertised min/max price of a photographer.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PortfolioItem is a single showcase image.
type PortfolioItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Package is a bookable offering with a fixed price and duration.
type Package struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours"`
}

// Photographer is a provider account together with its public listing.
// Rating and ReviewCount are derived from the review collection and are
// recomputed in full whenever a review is submitted.
type Photographer struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Password     string          `json:"-"`
	City         string          `json:"city"`
	Styles       []Style         `json:"styles"`
	PriceRange   PriceRange      `json:"price_range"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	Bio          string          `json:"bio"`
	Portfolio    []PortfolioItem `json:"portfolio"`
	Packages     []Package       `json:"packages"`
	Availability []string        `json:"availability,omitempty"`
}

// PackageByID returns the photographer's package with the given id.
func (p *Photographer) PackageByID(id string) (Package, bool) {
	for _, pkg := range p.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

// HasStyle reports whether the photographer lists the given style.
func (p *Photographer) HasStyle(s Style) bool {
	for _, st := range p.Styles {
		if st == s {
			return true
		}
	}
	return false
}
