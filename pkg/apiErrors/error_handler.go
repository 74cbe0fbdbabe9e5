package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern. Handlers translate engine errors into one
// of these before anything reaches the client.
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request body
	ErrMissingRequiredData = "VAL_002" // Required signing fields missing
	ErrInvalidFormat       = "VAL_003" // Field present but malformed

	// Proposal errors
	ErrProposalNotFound   = "PRP_001" // Unknown slug, or proposal expired
	ErrLifecycleViolation = "PRP_002" // Proposal is no longer editable

	// Billing errors
	ErrBillingFailed          = "BIL_001" // Billing collaborator rejected the call, safe to retry
	ErrReconciliationRequired = "BIL_002" // Billing succeeded but the commit failed, operator follow-up

	// Server errors
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrExternalService   = "SRV_003" // External service error
)

// Mapping of error codes to HTTP statuses
var httpStatusMap = map[string]int{
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrProposalNotFound:       http.StatusNotFound,
	ErrLifecycleViolation:     http.StatusConflict,
	ErrBillingFailed:          http.StatusBadGateway,
	ErrReconciliationRequired: http.StatusInternalServerError,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrExternalService:        http.StatusBadGateway,
}

// APIError is the standard error envelope
type APIError struct {
	Code    string `json:"code"`              // Error code for the client
	Message string `json:"message,omitempty"` // Descriptive message (optional)
	Details any    `json:"details,omitempty"` // Additional details (optional)
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps an existing Go error into an API error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
