package domain

import "time"

// MessageSender identifies which side of a booking wrote a message.
type MessageSender string

const (
	FromClient       MessageSender = "client"
	FromPhotographer MessageSender = "photographer"
)

// Message is one entry in a booking's chat thread. Threads are append-only
// and displayed sorted by timestamp ascending.
type Message struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	From      MessageSender `json:"from"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
}
