package domain

import (
	"errors"
	"time"
)

var ErrNoCourses = errors.New("no courses available")

// Course is the catalog aggregate. EnrollmentLimit is nil when the course
// has no cap.
type Course struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Instructor      string    `json:"instructor"`
	Duration        int       `json:"duration"`
	EnrollmentLimit *int      `json:"enrollment_limit"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidationError carries one message per offending field. It is returned,
// never panicked, so handlers can render field-level errors without
// recovering anything.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid course data"
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
