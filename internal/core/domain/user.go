package domain

import "errors"

// Role identifies which area of the marketplace an account may access.
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrEmailTaken = errors.New("email already taken")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RolePhotographer || r == RoleAdmin
}

// Client is a customer account that books photographers.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Admin is a back-office account.
type Admin struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Session is the currently authenticated identity. At most one session
// exists per auth service instance.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
