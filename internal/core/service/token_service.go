package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// TokenService issues and validates HS256-signed identity tokens. Validation
// is stateless and safe for concurrent use; no token is ever persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the identity plus issue/expiry timestamps.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": identity.Username,
		"role":     identity.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the embedded
// identity. Every failure mode collapses to domain.ErrInvalidToken so callers
// cannot act on a partially valid token.
func (s *TokenService) Validate(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{Username: username, Role: role}, nil
}
