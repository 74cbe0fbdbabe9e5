package domain

import "fmt"

// Error is a failure reported by the billing collaborator. StatusCode is
// the HTTP status of the rejected call; Code/Message come from the
// provider's error payload when present.
type Error struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("billing error %s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("billing error (status %d): %s", e.StatusCode, e.Message)
}
