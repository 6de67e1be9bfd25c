package models

// ErrorResponse is the body of every non-2xx response from the server.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
