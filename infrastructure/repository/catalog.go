package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/database/postgres"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
)

const (
	templatesTable = "industry_templates t"
	addOnsTable    = "add_ons ao"
)

// CatalogRepository is the read-only source of industry templates and the
// add-on catalog. Nothing in the engine writes through it.
type CatalogRepository interface {
	GetIndustryTemplate(ctx context.Context, industry string) (*domain.IndustryTemplate, error)
	ListIndustryTemplates(ctx context.Context) ([]*domain.IndustryTemplate, error)
	ListActiveAddOns(ctx context.Context) ([]*domain.AddOn, error)
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (c *catalogRepository) GetIndustryTemplate(ctx context.Context, industry string) (*domain.IndustryTemplate, error) {
	templateSQL, templateArgs, err := squirrel.
		Select("t.industry, t.display_name, t.executive_summary, t.target_keywords, t.services_setup, t.services_monthly, t.seo_deliverables, t.base_setup_fee, t.base_monthly_retainer").
		From(templatesTable).
		Where(squirrel.Eq{"t.industry": industry}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := c.conn.QueryRowContext(ctx, templateSQL, templateArgs...)

	tmpl, err := c.deserializeTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return tmpl, nil
}

func (c *catalogRepository) deserializeTemplate(row *sql.Row) (*domain.IndustryTemplate, error) {
	tmpl := &domain.IndustryTemplate{}

	var keywordsRaw, setupRaw, monthlyRaw, deliverablesRaw []byte

	if err := row.Scan(
		&tmpl.Industry,
		&tmpl.DisplayName,
		&tmpl.ExecutiveSummary,
		&keywordsRaw,
		&setupRaw,
		&monthlyRaw,
		&deliverablesRaw,
		&tmpl.BaseSetupFee,
		&tmpl.BaseMonthlyRetainer,
	); err != nil {
		return nil, err
	}

	// Structured columns are stored as JSONB
	if err := decodeTemplateColumns(tmpl, keywordsRaw, setupRaw, monthlyRaw, deliverablesRaw); err != nil {
		return nil, err
	}

	return tmpl, nil
}

// ListIndustryTemplates returns every template in the catalog, used to
// build the cached catalog snapshot.
func (c *catalogRepository) ListIndustryTemplates(ctx context.Context) ([]*domain.IndustryTemplate, error) {
	templatesSQL, templatesArgs, err := squirrel.
		Select("t.industry, t.display_name, t.executive_summary, t.target_keywords, t.services_setup, t.services_monthly, t.seo_deliverables, t.base_setup_fee, t.base_monthly_retainer").
		From(templatesTable).
		OrderBy("t.industry ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.conn.QueryContext(ctx, templatesSQL, templatesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.IndustryTemplate, 0)

	for rows.Next() {
		tmpl, err := c.deserializeTemplateRow(rows)
		if err != nil {
			return nil, err
		}

		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}

	return templates, nil
}

func (c *catalogRepository) deserializeTemplateRow(rows *sql.Rows) (*domain.IndustryTemplate, error) {
	tmpl := &domain.IndustryTemplate{}

	var keywordsRaw, setupRaw, monthlyRaw, deliverablesRaw []byte

	if err := rows.Scan(
		&tmpl.Industry,
		&tmpl.DisplayName,
		&tmpl.ExecutiveSummary,
		&keywordsRaw,
		&setupRaw,
		&monthlyRaw,
		&deliverablesRaw,
		&tmpl.BaseSetupFee,
		&tmpl.BaseMonthlyRetainer,
	); err != nil {
		return nil, err
	}

	if err := decodeTemplateColumns(tmpl, keywordsRaw, setupRaw, monthlyRaw, deliverablesRaw); err != nil {
		return nil, err
	}

	return tmpl, nil
}

func decodeTemplateColumns(tmpl *domain.IndustryTemplate, keywordsRaw, setupRaw, monthlyRaw, deliverablesRaw []byte) error {
	if err := json.Unmarshal(keywordsRaw, &tmpl.TargetKeywords); err != nil {
		return fmt.Errorf("failed to decode target_keywords: %w", err)
	}
	if err := json.Unmarshal(setupRaw, &tmpl.ServicesSetup); err != nil {
		return fmt.Errorf("failed to decode services_setup: %w", err)
	}
	if err := json.Unmarshal(monthlyRaw, &tmpl.ServicesMonthly); err != nil {
		return fmt.Errorf("failed to decode services_monthly: %w", err)
	}
	if err := json.Unmarshal(deliverablesRaw, &tmpl.SEODeliverables); err != nil {
		return fmt.Errorf("failed to decode seo_deliverables: %w", err)
	}
	return nil
}

// ListActiveAddOns returns the active catalog ordered by sort_order, with
// id as a stable tie-breaker.
func (c *catalogRepository) ListActiveAddOns(ctx context.Context) ([]*domain.AddOn, error) {
	addOnsSQL, addOnsArgs, err := squirrel.
		Select("ao.id, ao.name, ao.description, ao.icon, ao.details, ao.original_price, ao.discounted_price, ao.highlight, ao.sort_order").
		From(addOnsTable).
		Where(squirrel.Eq{"ao.active": true}).
		OrderBy("ao.sort_order ASC", "ao.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.conn.QueryContext(ctx, addOnsSQL, addOnsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	addOns := make([]*domain.AddOn, 0)

	for rows.Next() {
		addOn := &domain.AddOn{}

		var detailsRaw []byte

		if err := rows.Scan(
			&addOn.ID,
			&addOn.Name,
			&addOn.Description,
			&addOn.Icon,
			&detailsRaw,
			&addOn.OriginalPrice,
			&addOn.DiscountedPrice,
			&addOn.Highlight,
			&addOn.SortOrder,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(detailsRaw, &addOn.Details); err != nil {
			return nil, fmt.Errorf("failed to decode details for add-on %s: %w", addOn.ID, err)
		}

		addOns = append(addOns, addOn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating add-on rows: %w", err)
	}

	return addOns, nil
}
