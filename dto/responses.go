package dto

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the error body of every handled failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// FallbackError is the body written when a request fails outside the handlers
// (panics, unknown routes)
type FallbackError struct {
	Error FallbackErrorDetail `json:"error"`
}

type FallbackErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
