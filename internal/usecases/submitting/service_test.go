package submitting

import (
	"context"
	"errors"
	"testing"
	"time"

	billingdomain "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/domain"
	billingmocks "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/mocks"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository"
	repomocks "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository/mocks"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/lifecycle"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/offering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var signTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// staticCatalog is a fixed CatalogSource for tests.
type staticCatalog struct {
	snapshot *domain.CatalogSnapshot
	err      error
}

func (c *staticCatalog) Snapshot(_ context.Context) (*domain.CatalogSnapshot, error) {
	return c.snapshot, c.err
}

func testCatalog() *staticCatalog {
	templates := []*domain.IndustryTemplate{
		{
			Industry:            "dental",
			DisplayName:         "Dental Practices",
			ExecutiveSummary:    "Dominate local search for dental services.",
			BaseSetupFee:        2000,
			BaseMonthlyRetainer: 1200,
		},
	}
	addOns := []*domain.AddOn{
		{ID: "blog", Name: "Monthly Blog Content", OriginalPrice: 1200, DiscountedPrice: 597, SortOrder: 1},
		{ID: "social", Name: "Social Media Management", OriginalPrice: 900, DiscountedPrice: 497, SortOrder: 2},
	}
	return &staticCatalog{snapshot: domain.NewCatalogSnapshot(templates, addOns)}
}

func testProposal() *domain.Proposal {
	businessName := "Bright Smiles Dental"
	return &domain.Proposal{
		ID:           "prop-1",
		Slug:         "bright-smiles",
		ClientName:   "Amy Chen",
		ClientEmail:  "amy@brightsmiles.example",
		BusinessName: &businessName,
		Industry:     "dental",
		Status:       domain.ProposalStatusViewed,
	}
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		FullName:           "Amy Chen",
		Email:              "amy@brightsmiles.example",
		SignatureImageData: "data:image/png;base64,iVBORw0KGgo=",
		AgreedToTerms:      true,
		SelectedAddOnIDs:   []string{"blog"},
	}
}

func newTestService(t *testing.T) (*Service, *repomocks.MockProposalRepository, *billingmocks.MockBillingIntegrator) {
	ctrl := gomock.NewController(t)
	proposalRepo := repomocks.NewMockProposalRepository(ctrl)
	billing := billingmocks.NewMockBillingIntegrator(ctrl)

	resolver := offering.NewService(&config.Config{
		Proposal: config.Proposal{DefaultSummary: "We put together a custom growth plan."},
	})

	svc := &Service{
		proposalRepo: proposalRepo,
		catalog:      testCatalog(),
		resolver:     resolver,
		billing:      billing,
		now:          func() time.Time { return signTime },
	}

	return svc, proposalRepo, billing
}

func TestSubmitHappyPath(t *testing.T) {
	svc, proposalRepo, billing := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "bright-smiles").
		Return(testProposal(), nil)

	var billedParams billingdomain.CreateSubscriptionParams
	billing.EXPECT().
		CreateSubscription(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error) {
			billedParams = params
			return &billingdomain.SubscriptionResult{
				CustomerID:     "cus_123",
				SubscriptionID: "sub_456",
				InvoiceID:      "inv_789",
				InvoiceURL:     "https://billing.example/inv_789",
			}, nil
		}).
		Times(1)

	var commit *domain.SignedCommit
	proposalRepo.EXPECT().
		CommitSignedProposal(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SignedCommit) error {
			commit = c
			return nil
		})

	result, err := svc.Submit(ctx, "bright-smiles", validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ReferenceID)
	assert.Equal(t, "inv_789", result.InvoiceID)
	assert.Equal(t, "https://billing.example/inv_789", result.InvoiceURL)
	assert.Equal(t, signTime, result.SignedAt)

	// The quote is frozen at signing time from the current catalog.
	require.NotNil(t, result.Quote)
	assert.Equal(t, int64(2000), result.Quote.SetupTotal)
	assert.Equal(t, int64(1797), result.Quote.MonthlyTotal)
	assert.Equal(t, int64(603), result.Quote.TotalMonthlySavings)

	// Billing receives the provider's product keys, not the internal ids.
	assert.Equal(t, []string{"content-blog-monthly"}, billedParams.AddOnProductIDs)
	assert.Equal(t, "amy@brightsmiles.example", billedParams.CustomerEmail)
	assert.Equal(t, "Bright Smiles Dental", billedParams.BusinessName)
	assert.Equal(t, "bright-smiles", billedParams.ProposalRef)

	// The durable commit snapshots both the quote and the add-on prices.
	require.NotNil(t, commit)
	assert.Equal(t, "prop-1", commit.ProposalID)
	assert.Equal(t, result.ReferenceID, commit.ReferenceID)
	assert.Equal(t, signTime, commit.Signature.SignedAt)
	assert.Equal(t, "cus_123", commit.BillingRefs.CustomerID)
	require.Len(t, commit.SelectedAddOns, 1)
	assert.Equal(t, "blog", commit.SelectedAddOns[0].AddOnID)
	assert.Equal(t, int64(597), commit.SelectedAddOns[0].DiscountedPrice)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *SubmitRequest)
		wantFields []string
	}{
		{
			name:       "missing full name",
			mutate:     func(req *SubmitRequest) { req.FullName = "" },
			wantFields: []string{"fullName"},
		},
		{
			name:       "malformed email",
			mutate:     func(req *SubmitRequest) { req.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "missing signature image",
			mutate:     func(req *SubmitRequest) { req.SignatureImageData = "" },
			wantFields: []string{"signatureImageData"},
		},
		{
			name:       "terms not agreed",
			mutate:     func(req *SubmitRequest) { req.AgreedToTerms = false },
			wantFields: []string{"agreedToTerms"},
		},
		{
			name: "all failures reported at once",
			mutate: func(req *SubmitRequest) {
				*req = SubmitRequest{}
			},
			wantFields: []string{"fullName", "email", "signatureImageData", "agreedToTerms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT calls: neither the repository nor billing may be
			// touched when validation fails.
			svc, _, _ := newTestService(t)

			req := validRequest()
			tt.mutate(&req)

			result, err := svc.Submit(context.Background(), "bright-smiles", req)

			assert.Nil(t, result)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantFields, validationErr.Fields)
		})
	}
}

func TestSubmitProposalNotFound(t *testing.T) {
	svc, proposalRepo, _ := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "missing").
		Return(nil, nil)

	result, err := svc.Submit(ctx, "missing", validRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)
}

func TestSubmitLifecycleGuards(t *testing.T) {
	pastDeadline := signTime.Add(-time.Hour)

	tests := []struct {
		name       string
		proposal   func() *domain.Proposal
		wantStatus domain.ProposalStatus
	}{
		{
			name: "signed proposal rejects a second signing before billing",
			proposal: func() *domain.Proposal {
				p := testProposal()
				p.Status = domain.ProposalStatusSigned
				return p
			},
			wantStatus: domain.ProposalStatusSigned,
		},
		{
			name: "expired deadline rejects signing before billing",
			proposal: func() *domain.Proposal {
				p := testProposal()
				p.ExpiresAt = &pastDeadline
				return p
			},
			wantStatus: domain.ProposalStatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, proposalRepo, _ := newTestService(t)
			ctx := context.Background()

			proposalRepo.EXPECT().
				GetProposalBySlug(ctx, "bright-smiles").
				Return(tt.proposal(), nil)

			result, err := svc.Submit(ctx, "bright-smiles", validRequest())

			assert.Nil(t, result)
			var violation *lifecycle.Violation
			require.ErrorAs(t, err, &violation)
			assert.Equal(t, tt.wantStatus, violation.Status)
		})
	}
}

func TestSubmitBillingFailureAbortsBeforePersistence(t *testing.T) {
	svc, proposalRepo, billing := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "bright-smiles").
		Return(testProposal(), nil)

	billing.EXPECT().
		CreateSubscription(ctx, gomock.Any()).
		Return(nil, errors.New("card declined"))

	// CommitSignedProposal has no expectation: nothing may be persisted.
	result, err := svc.Submit(ctx, "bright-smiles", validRequest())

	assert.Nil(t, result)
	var billingErr *BillingError
	require.ErrorAs(t, err, &billingErr)
	assert.ErrorContains(t, billingErr.Err, "card declined")
}

func TestSubmitCommitRaceReportsAlreadySigned(t *testing.T) {
	svc, proposalRepo, billing := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "bright-smiles").
		Return(testProposal(), nil)

	billing.EXPECT().
		CreateSubscription(ctx, gomock.Any()).
		Return(&billingdomain.SubscriptionResult{CustomerID: "cus_123"}, nil)

	proposalRepo.EXPECT().
		CommitSignedProposal(ctx, gomock.Any()).
		Return(repository.ErrAlreadySigned)

	result, err := svc.Submit(ctx, "bright-smiles", validRequest())

	assert.Nil(t, result)
	var violation *lifecycle.Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domain.ProposalStatusSigned, violation.Status)
}

func TestSubmitCommitFailureFlagsReconciliation(t *testing.T) {
	svc, proposalRepo, billing := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "bright-smiles").
		Return(testProposal(), nil)

	billing.EXPECT().
		CreateSubscription(ctx, gomock.Any()).
		Return(&billingdomain.SubscriptionResult{
			CustomerID:     "cus_123",
			SubscriptionID: "sub_456",
		}, nil)

	proposalRepo.EXPECT().
		CommitSignedProposal(ctx, gomock.Any()).
		Return(errors.New("connection reset"))

	result, err := svc.Submit(ctx, "bright-smiles", validRequest())

	assert.Nil(t, result)
	var reconErr *ReconciliationError
	require.ErrorAs(t, err, &reconErr)
	assert.Equal(t, "prop-1", reconErr.ProposalID)
	// The billing refs ride along so an operator can reconcile manually.
	assert.Equal(t, "cus_123", reconErr.BillingRefs.CustomerID)
	assert.Equal(t, "sub_456", reconErr.BillingRefs.SubscriptionID)
}

func TestSubmitStaleAddOnNeverBilled(t *testing.T) {
	svc, proposalRepo, billing := newTestService(t)
	ctx := context.Background()

	proposalRepo.EXPECT().
		GetProposalBySlug(ctx, "bright-smiles").
		Return(testProposal(), nil)

	var billedParams billingdomain.CreateSubscriptionParams
	billing.EXPECT().
		CreateSubscription(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error) {
			billedParams = params
			return &billingdomain.SubscriptionResult{CustomerID: "cus_123"}, nil
		})

	var commit *domain.SignedCommit
	proposalRepo.EXPECT().
		CommitSignedProposal(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SignedCommit) error {
			commit = c
			return nil
		})

	req := validRequest()
	req.SelectedAddOnIDs = []string{"blog", "discontinued-addon"}

	result, err := svc.Submit(ctx, "bright-smiles", req)

	require.NoError(t, err)
	// The stale id was not priced, so it is not billed and not snapshotted.
	assert.Equal(t, []string{"content-blog-monthly"}, billedParams.AddOnProductIDs)
	require.Len(t, commit.SelectedAddOns, 1)
	assert.Equal(t, "blog", commit.SelectedAddOns[0].AddOnID)
	assert.Equal(t, int64(1797), result.Quote.MonthlyTotal)
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Simulate a first submission still holding the slug.
	svc.inFlight.Store("bright-smiles", struct{}{})

	result, err := svc.Submit(context.Background(), "bright-smiles", validRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
}
