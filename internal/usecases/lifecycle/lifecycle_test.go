package lifecycle

import (
	"testing"
	"time"

	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name     string
		proposal *domain.Proposal
		want     domain.ProposalStatus
	}{
		{
			name:     "draft without deadline stays draft",
			proposal: &domain.Proposal{Status: domain.ProposalStatusDraft},
			want:     domain.ProposalStatusDraft,
		},
		{
			name: "past deadline overrides the stored draft status",
			proposal: &domain.Proposal{
				Status:    domain.ProposalStatusDraft,
				ExpiresAt: timePtr(now.Add(-time.Hour)),
			},
			want: domain.ProposalStatusExpired,
		},
		{
			name: "past deadline overrides the stored viewed status",
			proposal: &domain.Proposal{
				Status:    domain.ProposalStatusViewed,
				ExpiresAt: timePtr(now.Add(-24 * time.Hour)),
			},
			want: domain.ProposalStatusExpired,
		},
		{
			name: "signed proposals never expire retroactively",
			proposal: &domain.Proposal{
				Status:    domain.ProposalStatusSigned,
				ExpiresAt: timePtr(now.Add(-time.Hour)),
			},
			want: domain.ProposalStatusSigned,
		},
		{
			name: "future deadline leaves the stored status intact",
			proposal: &domain.Proposal{
				Status:    domain.ProposalStatusViewed,
				ExpiresAt: timePtr(now.Add(time.Hour)),
			},
			want: domain.ProposalStatusViewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.proposal, now))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, Terminal(domain.ProposalStatusDraft))
	assert.False(t, Terminal(domain.ProposalStatusViewed))
	assert.True(t, Terminal(domain.ProposalStatusSigned))
	assert.True(t, Terminal(domain.ProposalStatusExpired))
}

func TestShouldMarkViewed(t *testing.T) {
	tests := []struct {
		name     string
		proposal *domain.Proposal
		want     bool
	}{
		{
			name:     "first fetch of a draft fires the view-mark",
			proposal: &domain.Proposal{Status: domain.ProposalStatusDraft},
			want:     true,
		},
		{
			name: "repeat fetch is a no-op",
			proposal: &domain.Proposal{
				Status:   domain.ProposalStatusViewed,
				ViewedAt: timePtr(now.Add(-time.Hour)),
			},
			want: false,
		},
		{
			name: "expired draft is never marked viewed",
			proposal: &domain.Proposal{
				Status:    domain.ProposalStatusDraft,
				ExpiresAt: timePtr(now.Add(-time.Minute)),
			},
			want: false,
		},
		{
			name:     "signed proposal is never marked viewed",
			proposal: &domain.Proposal{Status: domain.ProposalStatusSigned},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldMarkViewed(tt.proposal, now))
		})
	}
}

func TestCanSign(t *testing.T) {
	t.Run("draft is signable even when the view-mark never landed", func(t *testing.T) {
		err := CanSign(&domain.Proposal{ID: "p1", Status: domain.ProposalStatusDraft}, now)
		assert.NoError(t, err)
	})

	t.Run("viewed is signable", func(t *testing.T) {
		err := CanSign(&domain.Proposal{
			ID:       "p1",
			Status:   domain.ProposalStatusViewed,
			ViewedAt: timePtr(now.Add(-time.Hour)),
		}, now)
		assert.NoError(t, err)
	})

	t.Run("signed rejects a second signing", func(t *testing.T) {
		err := CanSign(&domain.Proposal{ID: "p1", Status: domain.ProposalStatusSigned}, now)

		var violation *Violation
		assert.ErrorAs(t, err, &violation)
		assert.Equal(t, domain.ProposalStatusSigned, violation.Status)
		assert.Equal(t, "sign", violation.Operation)
	})

	t.Run("expired deadline rejects signing even when stored status is viewed", func(t *testing.T) {
		err := CanSign(&domain.Proposal{
			ID:        "p1",
			Status:    domain.ProposalStatusViewed,
			ExpiresAt: timePtr(now.Add(-time.Second)),
		}, now)

		var violation *Violation
		assert.ErrorAs(t, err, &violation)
		assert.Equal(t, domain.ProposalStatusExpired, violation.Status)
	})
}
