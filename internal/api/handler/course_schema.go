package handler

// createCourseRequest carries the course payload. Duration is a pointer so
// that an absent field fails "required" while an explicit zero does not.
type createCourseRequest struct {
	Title           string `json:"title"            validate:"required,max=100"`
	Description     string `json:"description"      validate:"omitempty,max=500"`
	Instructor      string `json:"instructor"       validate:"required,max=100"`
	Duration        *int   `json:"duration"         validate:"required"`
	EnrollmentLimit *int   `json:"enrollment_limit"`
}

// validationErrorResponse is returned on 400 when field validation fails.
// Errors maps each offending field to a human-readable message.
type validationErrorResponse struct {
	Msg    string            `json:"msg"`
	Errors map[string]string `json:"errors"`
}

type courseResponse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Instructor      string `json:"instructor"`
	Duration        int    `json:"duration"`
	EnrollmentLimit *int   `json:"enrollment_limit"`
}
