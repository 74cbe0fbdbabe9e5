// Package offering resolves an industry template against a proposal's
// per-client overrides into the effective offer the client actually sees.
package offering

import (
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
)

type Resolver interface {
	Resolve(tmpl *domain.IndustryTemplate, proposal *domain.Proposal) *domain.EffectiveOffer
}

type Service struct {
	defaultSummary string
}

func NewService(cfg *config.Config) Resolver {
	return &Service{
		defaultSummary: cfg.Proposal.DefaultSummary,
	}
}

// Resolve merges the template with the proposal's overrides. Pure: no side
// effects, safe to call on every render.
func (s *Service) Resolve(tmpl *domain.IndustryTemplate, proposal *domain.Proposal) *domain.EffectiveOffer {
	offer := &domain.EffectiveOffer{
		ServicesSetup:   tmpl.ServicesSetup,
		ServicesMonthly: tmpl.ServicesMonthly,
		SEODeliverables: tmpl.SEODeliverables,
	}

	// Proposal-level fee overrides win over the template's base values.
	offer.ResolvedSetupFee = tmpl.BaseSetupFee
	if proposal.SetupFee != nil {
		offer.ResolvedSetupFee = *proposal.SetupFee
	}

	offer.ResolvedMonthlyRetainer = tmpl.BaseMonthlyRetainer
	if proposal.MonthlyRetainer != nil {
		offer.ResolvedMonthlyRetainer = *proposal.MonthlyRetainer
	}

	// The UI must never render an empty summary, hence the engine-level
	// default at the end of the chain.
	offer.SummaryText = s.defaultSummary
	if proposal.CustomIntro != nil && *proposal.CustomIntro != "" {
		offer.SummaryText = *proposal.CustomIntro
	} else if tmpl.ExecutiveSummary != "" {
		offer.SummaryText = tmpl.ExecutiveSummary
	}

	offer.Keywords = resolveKeywords(tmpl, proposal)
	offer.TotalKeywordVolume = resolveTotalVolume(proposal, offer.Keywords)

	return offer
}

func resolveKeywords(tmpl *domain.IndustryTemplate, proposal *domain.Proposal) []domain.Keyword {
	if proposal.KeywordData != nil && len(proposal.KeywordData.Keywords) > 0 {
		return proposal.KeywordData.Keywords
	}

	if len(tmpl.TargetKeywords) > 0 {
		return tmpl.TargetKeywords
	}

	return []domain.Keyword{}
}

// resolveTotalVolume prefers the snapshot's explicit total. Upstream data
// may aggregate beyond the displayed list, so an explicit total is
// authoritative even when it disagrees with the sum of the keywords.
func resolveTotalVolume(proposal *domain.Proposal, keywords []domain.Keyword) int64 {
	if proposal.KeywordData != nil && proposal.KeywordData.TotalVolume != nil {
		return *proposal.KeywordData.TotalVolume
	}

	var total int64
	for _, kw := range keywords {
		total += kw.Volume
	}

	return total
}
