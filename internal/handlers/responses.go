package handlers

// ErrorResponse is the JSON body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: film not found
	Error string `json:"error"`
}
