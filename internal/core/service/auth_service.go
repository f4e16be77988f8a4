package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

// dummyHash is a valid bcrypt digest compared against when a username does
// not exist, so the unknown-user path costs the same as a wrong password and
// login failures stay indistinguishable to a caller measuring latency.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
	cost   int
	log    zerolog.Logger
}

// NewAuthService wires the credential store and token issuer. cost is the
// bcrypt cost factor; out-of-range values fall back to bcrypt.DefaultCost.
func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, cost int, log zerolog.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, cost: cost, log: log}
}

// Register hashes the password and persists a new user. Role defaults to
// "user" when empty; a caller-supplied role is stored as-is, matching the
// behavior of the system this replaces (see DESIGN.md for the escalation
// caveat). Duplicate usernames surface as domain.ErrUserExists from the
// repository's uniqueness constraint.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues an identity token. Unknown user and
// wrong password both return domain.ErrInvalidCredentials; neither the error
// nor the timing reveals which occurred.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}
