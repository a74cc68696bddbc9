package ports

import "context"

// Counts is a snapshot of the size of every collection.
type Counts struct {
	Photographers int
	Clients       int
	Admins        int
	Bookings      int
	Messages      int
	Reviews       int
	Payments      int
}

// OverviewRepository exposes collection sizes for the admin dashboard.
type OverviewRepository interface {
	Counts(ctx context.Context) Counts
}
