package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the success envelope for write operations.
type messageResponse struct {
	Msg string `json:"msg"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// Role is optional; empty defaults to "user". Any supplied value is
	// stored as-is (inherited behavior, see DESIGN.md).
	Role string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}
