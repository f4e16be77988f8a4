package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/api/metrics"
	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for catalog operations.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := c.Validate(&req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationErrorResponse{
				Msg:    "Invalid course data",
				Errors: ve.Fields,
			})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	actor, _ := c.Get("username").(string)
	_, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		Instructor:      req.Instructor,
		Duration:        *req.Duration,
		EnrollmentLimit: req.EnrollmentLimit,
		Actor:           actor,
	})
	if err != nil {
		return err
	}

	metrics.CoursesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Msg: "Course created successfully!"})
}

// List handles GET /courses. An empty catalog is reported as 404 rather than
// an empty 200 array; clients depend on that signal.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   courseResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCourses) {
			return c.JSON(http.StatusNotFound, messageResponse{Msg: "No courses available"})
		}
		return err
	}

	resp := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, courseResponse{
			ID:              course.ID,
			Title:           course.Title,
			Description:     course.Description,
			Instructor:      course.Instructor,
			Duration:        course.Duration,
			EnrollmentLimit: course.EnrollmentLimit,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
