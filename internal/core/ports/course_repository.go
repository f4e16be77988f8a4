package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	// ListAll returns every course in insertion order. An empty catalog is
	// an empty slice, not an error.
	ListAll(ctx context.Context) ([]domain.Course, error)
}
