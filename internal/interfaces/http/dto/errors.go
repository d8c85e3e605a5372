package dto

import "net/http"

// Domain error codes understood by the HTTP layer
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// Client-facing messages for responses that carry no domain message
const (
	MsgValidationFailed = "Validation failed"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgInternal         = "An unexpected error occurred"
	MsgRateLimited      = "Too many requests. Please try again later."
	MsgBodyTooLarge     = "Request body exceeds maximum allowed size"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeRateLimited:   http.StatusTooManyRequests,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FieldError is one itemized validation failure
type FieldError struct {
	Field   string `json:"field" example:"totalRevenue"`
	Message string `json:"message" example:"Must be a decimal number"`
}

// ErrorResponse is the body of every failed request
// @Description Error response with optional per-field details
type ErrorResponse struct {
	Message string       `json:"message" example:"Profit and loss statement not found"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates an error response with a message only
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewValidationErrorResponse creates a 400 body itemizing each bad field
func NewValidationErrorResponse(fields []FieldError) ErrorResponse {
	return ErrorResponse{
		Message: MsgValidationFailed,
		Errors:  fields,
	}
}
