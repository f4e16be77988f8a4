package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// CreateCourseInput carries all data needed to create a course. Actor is the
// authenticated username, used for audit logging only.
type CreateCourseInput struct {
	Title           string
	Description     string
	Instructor      string
	Duration        int
	EnrollmentLimit *int
	Actor           string
}

// CourseService defines use-case operations for the catalog.
type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
	// List returns all courses, or domain.ErrNoCourses when the catalog is empty.
	List(ctx context.Context) ([]domain.Course, error)
}
