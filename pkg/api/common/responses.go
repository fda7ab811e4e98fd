package common

// ErrorResponse represents a standard error response from the analysis API
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`    // HTTP-like error code
	Details map[string]interface{} `json:"details,omitempty"` // Additional error context
}

// NewErrorResponse creates an error response from any error
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
