package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// UserRepository defines account persistence across the three user
// collections. Append operations allocate the record's id and return the
// stored copy. Lookups use the comma-ok idiom: the store is an in-memory
// object graph and has no failure modes of its own.
type UserRepository interface {
	AppendClient(ctx context.Context, c domain.Client) domain.Client
	AppendPhotographer(ctx context.Context, p domain.Photographer) domain.Photographer
	AppendAdmin(ctx context.Context, a domain.Admin) domain.Admin

	FindClient(ctx context.Context, id string) (domain.Client, bool)
	FindAdmin(ctx context.Context, id string) (domain.Admin, bool)

	// Email lookups are case-insensitive.
	ClientByEmail(ctx context.Context, email string) (domain.Client, bool)
	PhotographerByEmail(ctx context.Context, email string) (domain.Photographer, bool)
	AdminByEmail(ctx context.Context, email string) (domain.Admin, bool)

	// EmailExists reports whether the email is present, case-insensitively,
	// in the union of all three user collections.
	EmailExists(ctx context.Context, email string) bool

	ListClients(ctx context.Context) []domain.Client
}
