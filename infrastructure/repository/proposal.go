package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/database/postgres"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/lib/pq"
)

const proposalsTable = "proposals p"

// ErrAlreadySigned is returned when a signed commit targets a proposal that
// already carries a signature. The coordinator's lifecycle guard normally
// catches this earlier; the database check is the final word.
var ErrAlreadySigned = errors.New("proposal is already signed")

type ProposalRepository interface {
	GetProposalBySlug(ctx context.Context, slug string) (*domain.Proposal, error)
	MarkViewed(ctx context.Context, proposalID string, viewedAt time.Time) error
	CommitSignedProposal(ctx context.Context, commit *domain.SignedCommit) error
}

type proposalRepository struct {
	conn *postgres.Connection
}

func NewProposalRepository(conn *postgres.Connection) ProposalRepository {
	return &proposalRepository{
		conn: conn,
	}
}

func (r *proposalRepository) GetProposalBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	proposalSQL, proposalArgs, err := squirrel.
		Select(`p.id, p.slug, p.client_name, p.client_email, p.business_name, p.industry,
			p.setup_fee, p.monthly_retainer, p.fb_ads_budget_tier, p.recommended_addon_ids,
			p.custom_intro, p.custom_notes, p.status, p.viewed_at, p.signed_at, p.expires_at,
			p.keyword_data, p.signed_addon_ids, p.created_at, p.updated_at`).
		From(proposalsTable).
		Where(squirrel.Eq{"p.slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRowContext(ctx, proposalSQL, proposalArgs...)

	proposal, err := r.deserializeProposal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return proposal, nil
}

func (r *proposalRepository) deserializeProposal(row *sql.Row) (*domain.Proposal, error) {
	p := &domain.Proposal{}

	var keywordDataRaw []byte
	var recommendedIDs, signedIDs pq.StringArray

	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.ClientName,
		&p.ClientEmail,
		&p.BusinessName,
		&p.Industry,
		&p.SetupFee,
		&p.MonthlyRetainer,
		&p.FBAdsBudgetTier,
		&recommendedIDs,
		&p.CustomIntro,
		&p.CustomNotes,
		&p.Status,
		&p.ViewedAt,
		&p.SignedAt,
		&p.ExpiresAt,
		&keywordDataRaw,
		&signedIDs,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.RecommendedAddOnIDs = recommendedIDs
	p.SignedAddOnIDs = signedIDs

	if len(keywordDataRaw) > 0 {
		p.KeywordData = &domain.KeywordSnapshot{}
		if err := json.Unmarshal(keywordDataRaw, p.KeywordData); err != nil {
			return nil, fmt.Errorf("failed to decode keyword_data: %w", err)
		}
	}

	return p, nil
}

// MarkViewed stamps viewed_at exactly once. Repeated calls are no-ops, so
// the first-fetch side effect stays idempotent.
func (r *proposalRepository) MarkViewed(ctx context.Context, proposalID string, viewedAt time.Time) error {
	updateSQL, updateArgs, err := squirrel.
		Update("proposals").
		Set("status", domain.ProposalStatusViewed).
		Set("viewed_at", viewedAt).
		Set("updated_at", viewedAt).
		Where(squirrel.Eq{"id": proposalID}).
		Where("viewed_at IS NULL").
		Where(squirrel.Eq{"status": domain.ProposalStatusDraft}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, updateSQL, updateArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// CommitSignedProposal persists the signing outcome as one logical commit:
// the signature record, the locked-in add-on snapshot, the quote totals,
// the ad-budget tier and the billing refs, then flips the proposal to
// signed. The status predicate makes the transition at-most-once even if
// two commits race.
func (r *proposalRepository) CommitSignedProposal(ctx context.Context, commit *domain.SignedCommit) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		signedIDs := make(pq.StringArray, 0, len(commit.SelectedAddOns))
		for _, snapshot := range commit.SelectedAddOns {
			signedIDs = append(signedIDs, snapshot.AddOnID)
		}

		updateSQL, updateArgs, err := squirrel.
			Update("proposals").
			Set("status", domain.ProposalStatusSigned).
			Set("signed_at", commit.Signature.SignedAt).
			Set("signed_addon_ids", signedIDs).
			Set("fb_ads_budget_tier", commit.FBAdsBudgetTier).
			Set("updated_at", commit.Signature.SignedAt).
			Where(squirrel.Eq{"id": commit.ProposalID}).
			Where(squirrel.NotEq{"status": domain.ProposalStatusSigned}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.ExecContext(ctx, updateSQL, updateArgs...)
		if err != nil {
			return fmt.Errorf("failed to update proposal: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrAlreadySigned
		}

		snapshotJSON, err := json.Marshal(commit.SelectedAddOns)
		if err != nil {
			return fmt.Errorf("failed to encode add-on snapshot: %w", err)
		}

		insertSQL, insertArgs, err := squirrel.
			Insert("proposal_signatures").
			Columns("proposal_id", "reference_id", "full_name", "email", "signature_image_data",
				"agreed_to_terms", "signed_at", "setup_total", "monthly_base", "addon_monthly_subtotal",
				"monthly_total", "total_monthly_savings", "addon_snapshot", "fb_ads_budget_tier",
				"billing_customer_id", "billing_subscription_id", "billing_invoice_id", "billing_invoice_url").
			Values(
				commit.ProposalID,
				commit.ReferenceID,
				commit.Signature.FullName,
				commit.Signature.Email,
				commit.Signature.SignatureImageData,
				commit.Signature.AgreedToTerms,
				commit.Signature.SignedAt,
				commit.Quote.SetupTotal,
				commit.Quote.MonthlyBase,
				commit.Quote.AddOnMonthlySubtotal,
				commit.Quote.MonthlyTotal,
				commit.Quote.TotalMonthlySavings,
				snapshotJSON,
				commit.FBAdsBudgetTier,
				commit.BillingRefs.CustomerID,
				commit.BillingRefs.SubscriptionID,
				commit.BillingRefs.InvoiceID,
				commit.BillingRefs.InvoiceURL,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("failed to insert signature record: %w", err)
		}

		return nil
	})
}
