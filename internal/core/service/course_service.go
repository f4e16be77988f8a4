package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

type CourseService struct {
	repo   ports.CourseRepository
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// Create persists a new course. Field validation happens at the transport
// boundary; by the time input reaches here it is structurally valid.
func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	course := &domain.Course{
		Title:           input.Title,
		Description:     input.Description,
		Instructor:      input.Instructor,
		Duration:        input.Duration,
		EnrollmentLimit: input.EnrollmentLimit,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create course")
		return nil, err
	}

	s.logger.Info().Str("title", created.Title).Str("actor", input.Actor).Msg("course created")
	return created, nil
}

// List returns every course in insertion order, or domain.ErrNoCourses when
// the catalog is empty. The empty catalog is deliberately an error outcome:
// the listing endpoint reports it as 404.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list courses")
		return nil, err
	}
	if len(courses) == 0 {
		return nil, domain.ErrNoCourses
	}
	return courses, nil
}
