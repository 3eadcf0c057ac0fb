package responses

import "time"

// APIResponse is the single envelope every endpoint answers with: data on
// success, a caller-safe message on error.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
	Data      *T        `json:"data,omitempty"`
}
