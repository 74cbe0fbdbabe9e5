package submitting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
)

// ErrSubmissionInProgress guards against a second billing call while the
// first is still outstanding for the same proposal.
var ErrSubmissionInProgress = errors.New("a submission is already in progress for this proposal")

// ValidationError names the signing inputs that are missing or malformed.
// No state mutation has happened when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid signing input: %s", strings.Join(e.Fields, ", "))
}

// BillingError wraps a billing collaborator failure. Nothing has been
// persisted and the lifecycle is untouched, so the client may retry with
// identical inputs.
type BillingError struct {
	Err error
}

func (e *BillingError) Error() string {
	return fmt.Sprintf("billing call failed: %v", e.Err)
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

// ReconciliationError is the one not-fully-idempotent window: billing
// succeeded but the signed commit did not land. Retrying would risk a
// duplicate charge, so the caller gets a distinct "we'll follow up" answer
// and the operator reconciles manually using the carried billing refs.
type ReconciliationError struct {
	ProposalID  string
	BillingRefs domain.BillingRefs
	Err         error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("signed commit failed after billing success for proposal %s: %v", e.ProposalID, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
