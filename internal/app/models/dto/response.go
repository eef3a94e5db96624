package dto

// MessageResponse is the standard success body for mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error body. Path and Method are set only on
// unmatched-route responses; Details only on 500s outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
	Method  string `json:"method,omitempty"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates an error body with just a message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
