package ports

import (
	"context"

	"github.com/picmatch/marketplace/internal/core/domain"
)

// SignupInput carries the fields of a signup form. Values are trimmed
// before validation; email is also lowercased.
type SignupInput struct {
	Name     string      `validate:"required"`
	Email    string      `validate:"required"`
	Password string      `validate:"required"`
	Role     domain.Role `validate:"required,oneof=client photographer admin"`
}

// AuthService validates credentials, creates accounts and holds the single
// current session.
type AuthService interface {
	// Login searches the client, photographer and admin collections in that
	// order for a case-insensitive email match and checks the password
	// exactly. On success the current session is replaced.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Signup creates an account in the collection matching the role and
	// replaces the current session with the new identity.
	Signup(ctx context.Context, input SignupInput) (*domain.Session, error)
	// Logout clears the current session. Always succeeds.
	Logout()
	// CurrentSession returns a copy of the current session, or nil when
	// nobody is logged in.
	CurrentSession() *domain.Session
	// Authorize grants when the current session's role is in the allowed
	// set and returns domain.ErrForbidden otherwise (also when there is no
	// session).
	Authorize(allowed ...domain.Role) error
	// Landing returns the dashboard path for the current session's role, or
	// the login path when there is no session.
	Landing() string
}
