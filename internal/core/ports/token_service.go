package ports

import "github.com/coursehub/catalog-api/internal/core/domain"

// TokenService issues and validates stateless identity tokens. Validate
// returns the identity exactly as issued, or domain.ErrInvalidToken on any
// signature, structure, or expiry failure — never a partial result.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Validate(token string) (domain.Identity, error)
}
