package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Create must rely on the store's uniqueness constraint as the authoritative
// duplicate guard and translate a violation into domain.ErrUserExists.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
