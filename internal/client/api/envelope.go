package api

// Envelope is the uniform response wrapper used by every backend endpoint.
// Data is only meaningful when Success is true; on validation failures the
// backend sets Success to false and fills Errors with per-field messages.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data,omitempty"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// rawEnvelope is used to peek at envelope metadata of failed responses
// without knowing the payload type.
type rawEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
