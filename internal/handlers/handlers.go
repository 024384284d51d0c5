package handlers

import (
	"github.com/go-playground/validator/v10"
)

// validate checks request DTO struct tags at the boundary, before any service
// call.
var validate = validator.New()

// MessageResponse represents a generic success response
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: OTP sent to email
	Message string `json:"message"`
}

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}
