package dto

import "time"

// LoginRequest carries one credential pair from the login prompt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest carries the registration form fields. Password length and
// confirmation live in the tags so the auth service rejects them before any
// repository access.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	ExternalID      string `json:"external_id" validate:"required,max=50"`
	Username        string `json:"username" validate:"required,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	RoleID          int    `json:"role_id" validate:"required"`
}

// Session is the proof of a successful login. The token is an HS256 JWT the
// gate verifies before every mutating operation; the rest is display state for
// the front end.
type Session struct {
	ID       string    `json:"id"`
	UserID   int       `json:"user_id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// Option is an (id, name) pair for the role and responsible-user pickers.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
