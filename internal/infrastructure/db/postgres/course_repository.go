package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course. Validation happens upstream; a failure here
// leaves no partial row behind.
func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	query := `
		INSERT INTO courses (title, description, instructor, duration, enrollment_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var limit sql.NullInt64
	if course.EnrollmentLimit != nil {
		limit = sql.NullInt64{Int64: int64(*course.EnrollmentLimit), Valid: true}
	}

	created := *course
	err := r.db.QueryRowContext(ctx, query,
		course.Title, course.Description, course.Instructor, course.Duration, limit, course.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	return &created, nil
}

// ListAll returns every course ordered by id, which preserves insertion
// order. An empty catalog yields an empty slice.
func (r *CourseRepository) ListAll(ctx context.Context) ([]domain.Course, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), instructor, duration, enrollment_limit, created_at
		FROM courses
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		var limit sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Duration, &limit, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if limit.Valid {
			v := int(limit.Int64)
			c.EnrollmentLimit = &v
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}
