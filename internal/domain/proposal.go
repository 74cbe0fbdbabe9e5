package domain

import (
	"time"
)

type ProposalStatus string

const (
	ProposalStatusDraft   ProposalStatus = "draft"
	ProposalStatusViewed  ProposalStatus = "viewed"
	ProposalStatusSigned  ProposalStatus = "signed"
	ProposalStatusExpired ProposalStatus = "expired"
)

type FBAdsBudgetTier string

const (
	FBAdsBudgetTierBasic       FBAdsBudgetTier = "basic"
	FBAdsBudgetTierRecommended FBAdsBudgetTier = "recommended"
)

// KeywordSnapshot is an externally-sourced keyword/volume snapshot attached
// to a proposal. When present it supersedes the template's target keywords.
// TotalVolume, when supplied, is authoritative even if it disagrees with the
// sum of the listed keywords (upstream data may aggregate beyond the list).
type KeywordSnapshot struct {
	Keywords    []Keyword `json:"keywords"`
	TotalVolume *int64    `json:"total_volume"`
}

// Proposal is one client-specific instance of an industry offer. Created in
// draft by the admin tooling, addressed externally by slug, and immutable
// once signed.
type Proposal struct {
	ID                  string           `json:"id"`
	Slug                string           `json:"slug"`
	ClientName          string           `json:"client_name"`
	ClientEmail         string           `json:"client_email"`
	BusinessName        *string          `json:"business_name"`
	Industry            string           `json:"industry"`
	SetupFee            *int64           `json:"setup_fee"`
	MonthlyRetainer     *int64           `json:"monthly_retainer"`
	FBAdsBudgetTier     FBAdsBudgetTier  `json:"fb_ads_budget_tier"`
	RecommendedAddOnIDs []string         `json:"recommended_addon_ids"`
	CustomIntro         *string          `json:"custom_intro"`
	CustomNotes         *string          `json:"custom_notes"`
	Status              ProposalStatus   `json:"status"`
	ViewedAt            *time.Time       `json:"viewed_at"`
	SignedAt            *time.Time       `json:"signed_at"`
	ExpiresAt           *time.Time       `json:"expires_at"`
	KeywordData         *KeywordSnapshot `json:"keyword_data"`
	SignedAddOnIDs      []string         `json:"signed_addon_ids"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// Expired reports whether the proposal's deadline has passed at the given
// instant. A nil ExpiresAt means the proposal never expires.
func (p *Proposal) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
