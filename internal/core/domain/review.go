package domain

import "time"

// Review is a client's rating of a photographer for a booking. Submitting
// one triggers a full recompute of the photographer's derived rating and
// review count.
type Review struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	PhotographerID string    `json:"photographer_id"`
	ClientID       string    `json:"client_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
