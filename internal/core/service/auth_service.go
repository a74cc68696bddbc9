package service

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/picmatch/marketplace/internal/core/domain"
	"github.com/picmatch/marketplace/internal/core/ports"
)

// AuthService implements login, signup and the single current session.
// Passwords are stored and compared in plaintext: this is a demo system
// with no credential hardening.
type AuthService struct {
	users ports.UserRepository
	v     *validator.Validate
	log   zerolog.Logger

	mu      sync.Mutex
	session *domain.Session
}

func NewAuthService(users ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, v: validator.New(), log: log}
}

// Login checks the supplied credentials against the client, photographer
// and admin collections in that order. The email match is case-insensitive;
// the password check is exact against the stored value. Once an email
// matches in one collection the search stops: a password mismatch there
// fails the login even though later collections were never consulted
// (signup guarantees the email is unique across all three anyway).
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if c, ok := s.users.ClientByEmail(ctx, email); ok {
		if c.Password != password {
			s.log.Debug().Str("email", email).Msg("login rejected: password mismatch")
			return nil, domain.ErrInvalidCredentials
		}
		return s.setSession(domain.Session{ID: c.ID, Name: c.Name, Email: c.Email, Role: domain.RoleClient}), nil
	}

	if p, ok := s.users.PhotographerByEmail(ctx, email); ok {
		if p.Password != password {
			s.log.Debug().Str("email", email).Msg("login rejected: password mismatch")
			return nil, domain.ErrInvalidCredentials
		}
		return s.setSession(domain.Session{ID: p.ID, Name: p.Name, Email: p.Email, Role: domain.RolePhotographer}), nil
	}

	if a, ok := s.users.AdminByEmail(ctx, email); ok {
		if a.Password != password {
			s.log.Debug().Str("email", email).Msg("login rejected: password mismatch")
			return nil, domain.ErrInvalidCredentials
		}
		return s.setSession(domain.Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: domain.RoleAdmin}), nil
	}

	s.log.Debug().Str("email", email).Msg("login rejected: no account")
	return nil, domain.ErrAccountNotFound
}

// Signup creates an account in the collection matching the requested role
// and logs the new identity in. Email uniqueness is enforced across the
// union of all three user collections.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)

	if err := checkInput(s.v, input); err != nil {
		return nil, err
	}
	if s.users.EmailExists(ctx, input.Email) {
		s.log.Debug().Str("email", input.Email).Msg("signup rejected: email taken")
		return nil, domain.ErrEmailTaken
	}

	var session domain.Session
	switch input.Role {
	case domain.RoleClient:
		c := s.users.AppendClient(ctx, domain.Client{Name: input.Name, Email: input.Email, Password: input.Password})
		session = domain.Session{ID: c.ID, Name: c.Name, Email: c.Email, Role: domain.RoleClient}
	case domain.RolePhotographer:
		// New photographers start with a blank listing they fill in later.
		p := s.users.AppendPhotographer(ctx, domain.Photographer{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
			City:     "Unknown",
		})
		session = domain.Session{ID: p.ID, Name: p.Name, Email: p.Email, Role: domain.RolePhotographer}
	case domain.RoleAdmin:
		a := s.users.AppendAdmin(ctx, domain.Admin{Name: input.Name, Email: input.Email, Password: input.Password})
		session = domain.Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: domain.RoleAdmin}
	}

	s.log.Info().Str("id", session.ID).Str("role", string(session.Role)).Msg("account created")
	return s.setSession(session), nil
}

// Logout clears the current session unconditionally.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// CurrentSession returns a copy of the active session, or nil.
func (s *AuthService) CurrentSession() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	clone := *s.session
	return &clone
}

// Authorize grants when the current session's role is in the allowed set.
func (s *AuthService) Authorize(allowed ...domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.ErrForbidden
	}
	for _, r := range allowed {
		if s.session.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// Landing returns the dashboard path for the session's role. A denied
// caller is redirected here; an anonymous caller goes to the login page.
func (s *AuthService) Landing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return "/login"
	}
	switch s.session.Role {
	case domain.RoleClient:
		return "/dashboard/client"
	case domain.RolePhotographer:
		return "/dashboard/photographer"
	default:
		return "/dashboard/admin"
	}
}

func (s *AuthService) setSession(session domain.Session) *domain.Session {
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	s.log.Info().Str("id", session.ID).Str("role", string(session.Role)).Msg("session started")
	clone := session
	return &clone
}
