package domain

import (
	"errors"
	"time"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("bad username or password")
var ErrMissingCredentials = errors.New("username and password are required")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. PasswordHash holds the bcrypt digest and
// is never serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal carried inside a token. The token
// is the sole source of truth for the role on each request; a role change in
// the store does not affect outstanding tokens until they expire.
type Identity struct {
	Username string
	Role     string
}
