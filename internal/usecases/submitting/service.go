// Package submitting coordinates the one-shot signing of a proposal:
// precondition validation, the billing subscription call and the durable
// signed commit, with at-most-one successful signing transition.
package submitting

import (
	"context"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	billingintegrator "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing"
	billingdomain "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/lifecycle"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/offering"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/pricing"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/proposing"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/log"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/utils"
)

// SubmitRequest carries the client's signing inputs, including the
// selection frozen at the moment of signing.
type SubmitRequest struct {
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	SignatureImageData string   `json:"signature_image_data"`
	AgreedToTerms      bool     `json:"agreed_to_terms"`
	SelectedAddOnIDs   []string `json:"selected_addon_ids"`
}

type Submitter interface {
	Submit(ctx context.Context, slug string, req SubmitRequest) (*domain.SubmissionResult, error)
}

type Service struct {
	proposalRepo repository.ProposalRepository
	catalog      proposing.CatalogSource
	resolver     offering.Resolver
	billing      billingintegrator.BillingIntegrator
	now          func() time.Time

	// One in-flight submission per proposal. A busy flag, not a queue.
	inFlight sync.Map
}

func NewService(
	proposalRepo repository.ProposalRepository,
	catalog proposing.CatalogSource,
	resolver offering.Resolver,
	billing billingintegrator.BillingIntegrator,
) Submitter {
	return &Service{
		proposalRepo: proposalRepo,
		catalog:      catalog,
		resolver:     resolver,
		billing:      billing,
		now:          time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, slug string, req SubmitRequest) (*domain.SubmissionResult, error) {
	if _, busy := s.inFlight.LoadOrStore(slug, struct{}{}); busy {
		return nil, ErrSubmissionInProgress
	}
	defer s.inFlight.Delete(slug)

	// Preconditions first: no external call is made until every signing
	// input is present and well-formed.
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()

	proposal, err := s.proposalRepo.GetProposalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	// Lifecycle guard: draft and viewed are both signable; signed and
	// expired reject the attempt before billing is ever reached.
	if err := lifecycle.CanSign(proposal, now); err != nil {
		return nil, err
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	tmpl, ok := snapshot.Templates[proposal.Industry]
	if !ok {
		return nil, domain.ErrIndustryTemplateNotFound
	}

	// Freeze the client's choices: the quote and the add-on snapshot are
	// computed once, here, and persisted as-is. Later catalog edits never
	// alter a signed proposal's totals.
	offer := s.resolver.Resolve(tmpl, proposal)
	selection := domain.NewSelectionState(req.SelectedAddOnIDs...)
	quote := pricing.Calculate(offer, snapshot.AddOnsByID, selection)

	selectedAddOns := make([]domain.SelectedAddOnSnapshot, 0, selection.Len())
	internalIDs := make([]string, 0, selection.Len())
	for _, id := range selection.IDs() {
		addOn, ok := snapshot.AddOnsByID[id]
		if !ok {
			// Stale reference to a removed add-on. It was not priced, so
			// it must not be billed either.
			continue
		}
		selectedAddOns = append(selectedAddOns, domain.SelectedAddOnSnapshot{
			AddOnID:         addOn.ID,
			Name:            addOn.Name,
			OriginalPrice:   addOn.OriginalPrice,
			DiscountedPrice: addOn.DiscountedPrice,
		})
		internalIDs = append(internalIDs, addOn.ID)
	}

	businessName := ""
	if proposal.BusinessName != nil {
		businessName = *proposal.BusinessName
	}

	subscription, err := s.billing.CreateSubscription(ctx, billingdomain.CreateSubscriptionParams{
		CustomerEmail:      req.Email,
		CustomerName:       req.FullName,
		BusinessName:       businessName,
		AddOnProductIDs:    TranslateAddOnIDs(internalIDs),
		SignatureImageData: req.SignatureImageData,
		ProposalRef:        proposal.Slug,
	})
	if err != nil {
		// Nothing persisted, lifecycle untouched: the client may retry
		// with identical inputs.
		log.ForContext(ctx).WithError(err).WithField("proposal_id", proposal.ID).
			Warn("Billing call failed, submission aborted before persistence")
		return nil, &BillingError{Err: err}
	}

	referenceID, err := utils.GenerateID()
	if err != nil {
		referenceID = proposal.ID
	}

	billingRefs := domain.BillingRefs{
		CustomerID:     subscription.CustomerID,
		SubscriptionID: subscription.SubscriptionID,
		InvoiceID:      subscription.InvoiceID,
		InvoiceURL:     subscription.InvoiceURL,
	}

	commit := &domain.SignedCommit{
		ProposalID:  proposal.ID,
		ReferenceID: referenceID,
		Signature: domain.SignatureRecord{
			FullName:           req.FullName,
			Email:              req.Email,
			SignatureImageData: req.SignatureImageData,
			AgreedToTerms:      req.AgreedToTerms,
			SignedAt:           now,
		},
		Quote:           *quote,
		SelectedAddOns:  selectedAddOns,
		FBAdsBudgetTier: proposal.FBAdsBudgetTier,
		BillingRefs:     billingRefs,
	}

	if err := s.proposalRepo.CommitSignedProposal(ctx, commit); err != nil {
		if err == repository.ErrAlreadySigned {
			// Lost a race against another successful submit. Billing was
			// invoked twice only if both got past the guard, which the
			// in-flight flag prevents within this process.
			return nil, &lifecycle.Violation{
				ProposalID: proposal.ID,
				Status:     domain.ProposalStatusSigned,
				Operation:  "sign",
			}
		}

		// Billing already succeeded. Retrying would risk a duplicate
		// charge, so flag the commit for manual reconciliation instead.
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"proposal_id":          proposal.ID,
			"billing_customer":     billingRefs.CustomerID,
			"billing_subscription": billingRefs.SubscriptionID,
			"needs_reconciliation": true,
		}).Error("Signed commit failed after billing success")

		return nil, &ReconciliationError{
			ProposalID:  proposal.ID,
			BillingRefs: billingRefs,
			Err:         err,
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"proposal_id":   proposal.ID,
		"reference_id":  referenceID,
		"monthly_total": quote.MonthlyTotal,
		"setup_total":   quote.SetupTotal,
	}).Info("Proposal signed")

	return &domain.SubmissionResult{
		ReferenceID: referenceID,
		InvoiceID:   billingRefs.InvoiceID,
		InvoiceURL:  billingRefs.InvoiceURL,
		SignedAt:    now,
		Quote:       quote,
	}, nil
}

// validateRequest checks every signing precondition and reports all the
// missing fields at once.
func validateRequest(req SubmitRequest) error {
	fields := make([]string, 0, 4)

	if req.FullName == "" {
		fields = append(fields, "fullName")
	}

	if req.Email == "" || !govalidator.IsEmail(req.Email) {
		fields = append(fields, "email")
	}

	if req.SignatureImageData == "" {
		fields = append(fields, "signatureImageData")
	}

	if !req.AgreedToTerms {
		fields = append(fields, "agreedToTerms")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
