// Package proposing serves the client-facing proposal view: it loads a
// proposal by slug, fires the one-time view-mark, resolves the effective
// offer and computes the quote the page renders.
package proposing

import (
	"context"
	"time"

	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/lifecycle"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/offering"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/pricing"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/log"
)

// CatalogSource hands out the shared read-only catalog snapshot.
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.CatalogSnapshot, error)
}

// ProposalView is everything the presentation layer needs to render a
// proposal page: the derived status, the resolved offer, the seeded
// selection and its quote, plus the add-on catalog for the toggles.
type ProposalView struct {
	Proposal       *domain.Proposal       `json:"proposal"`
	Status         domain.ProposalStatus  `json:"status"`
	Offer          *domain.EffectiveOffer `json:"offer"`
	Quote          *domain.Quote          `json:"quote"`
	SelectedAddOns []string               `json:"selected_addon_ids"`
	AddOns         []*domain.AddOn        `json:"add_ons"`
}

type ProposalViewer interface {
	GetProposalView(ctx context.Context, slug string) (*ProposalView, error)
	PreviewQuote(ctx context.Context, slug string, selectedAddOnIDs []string) (*domain.Quote, error)
}

type Service struct {
	proposalRepo repository.ProposalRepository
	catalog      CatalogSource
	resolver     offering.Resolver
	now          func() time.Time
}

func NewService(
	proposalRepo repository.ProposalRepository,
	catalog CatalogSource,
	resolver offering.Resolver,
) ProposalViewer {
	return &Service{
		proposalRepo: proposalRepo,
		catalog:      catalog,
		resolver:     resolver,
		now:          time.Now,
	}
}

func (s *Service) GetProposalView(ctx context.Context, slug string) (*ProposalView, error) {
	now := s.now()

	proposal, err := s.proposalRepo.GetProposalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	status := lifecycle.EffectiveStatus(proposal, now)

	// First client fetch flips draft to viewed. A failure here must not
	// break the read path: signing tolerates proposals still in draft.
	if lifecycle.ShouldMarkViewed(proposal, now) {
		if err := s.proposalRepo.MarkViewed(ctx, proposal.ID, now); err != nil {
			log.ForContext(ctx).WithError(err).WithField("proposal_id", proposal.ID).
				Warn("Failed to mark proposal as viewed")
		} else {
			proposal.Status = domain.ProposalStatusViewed
			proposal.ViewedAt = &now
			status = lifecycle.EffectiveStatus(proposal, now)
		}
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	tmpl, ok := snapshot.Templates[proposal.Industry]
	if !ok {
		return nil, domain.ErrIndustryTemplateNotFound
	}

	offer := s.resolver.Resolve(tmpl, proposal)
	selection := seedSelection(proposal)
	quote := pricing.Calculate(offer, snapshot.AddOnsByID, selection)

	return &ProposalView{
		Proposal:       proposal,
		Status:         status,
		Offer:          offer,
		Quote:          quote,
		SelectedAddOns: selection.IDs(),
		AddOns:         snapshot.AddOns,
	}, nil
}

// PreviewQuote reprices an explicit selection without touching any state.
// The frontend calls it on every toggle.
func (s *Service) PreviewQuote(ctx context.Context, slug string, selectedAddOnIDs []string) (*domain.Quote, error) {
	proposal, err := s.proposalRepo.GetProposalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	tmpl, ok := snapshot.Templates[proposal.Industry]
	if !ok {
		return nil, domain.ErrIndustryTemplateNotFound
	}

	offer := s.resolver.Resolve(tmpl, proposal)
	selection := domain.NewSelectionState(selectedAddOnIDs...)

	return pricing.Calculate(offer, snapshot.AddOnsByID, selection), nil
}

// seedSelection initializes the session's selection: the persisted snapshot
// for signed proposals, the admin's recommendations otherwise.
func seedSelection(proposal *domain.Proposal) *domain.SelectionState {
	if proposal.Status == domain.ProposalStatusSigned && len(proposal.SignedAddOnIDs) > 0 {
		return domain.NewSelectionState(proposal.SignedAddOnIDs...)
	}
	return domain.NewSelectionState(proposal.RecommendedAddOnIDs...)
}
