package dto

// MessageResponse represents a standard success confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope used by every failing endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}
