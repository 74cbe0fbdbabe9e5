// Package lifecycle governs the forward-only status progression of a
// proposal: draft → viewed → signed, with expired reachable from any
// pre-signed status once the deadline passes.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
)

// Violation is returned for any operation attempted against a terminal
// proposal. Never retried automatically.
type Violation struct {
	ProposalID string
	Status     domain.ProposalStatus
	Operation  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("lifecycle violation: cannot %s proposal %s in status %q", v.Operation, v.ProposalID, v.Status)
}

// EffectiveStatus derives the status the rest of the engine must honor.
// The expiry override is applied before anything else: a past ExpiresAt
// makes the proposal expired no matter what status is stored. Signed
// proposals never expire retroactively.
func EffectiveStatus(p *domain.Proposal, now time.Time) domain.ProposalStatus {
	if p.Status == domain.ProposalStatusSigned {
		return domain.ProposalStatusSigned
	}

	if p.Expired(now) {
		return domain.ProposalStatusExpired
	}

	return p.Status
}

// Terminal reports whether the status admits no further transitions.
func Terminal(status domain.ProposalStatus) bool {
	return status == domain.ProposalStatusSigned || status == domain.ProposalStatusExpired
}

// ShouldMarkViewed reports whether the first-fetch side effect still needs
// to fire. Repeat fetches and terminal proposals return false, which keeps
// the view-mark idempotent.
func ShouldMarkViewed(p *domain.Proposal, now time.Time) bool {
	if Terminal(EffectiveStatus(p, now)) {
		return false
	}
	return p.ViewedAt == nil && p.Status == domain.ProposalStatusDraft
}

// CanSign validates signing eligibility. Draft and viewed are one
// pre-signed class: a proposal whose view-mark never landed must still be
// signable.
func CanSign(p *domain.Proposal, now time.Time) error {
	status := EffectiveStatus(p, now)

	if Terminal(status) {
		return &Violation{
			ProposalID: p.ID,
			Status:     status,
			Operation:  "sign",
		}
	}

	return nil
}
