package pricing

import (
	"testing"

	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func blogCatalog() map[string]*domain.AddOn {
	return CatalogByID([]*domain.AddOn{
		{
			ID:              "blog",
			Name:            "Monthly Blog Content",
			OriginalPrice:   1200,
			DiscountedPrice: 597,
			SortOrder:       1,
		},
		{
			ID:              "social",
			Name:            "Social Media Management",
			OriginalPrice:   900,
			DiscountedPrice: 497,
			SortOrder:       2,
		},
	})
}

func TestCalculate(t *testing.T) {
	offer := &domain.EffectiveOffer{
		ResolvedSetupFee:        2000,
		ResolvedMonthlyRetainer: 1200,
	}

	tests := []struct {
		name     string
		selected []string
		validate func(t *testing.T, quote *domain.Quote)
	}{
		{
			name:     "selecting the blog add-on adds its discounted price to the monthly total",
			selected: []string{"blog"},
			validate: func(t *testing.T, quote *domain.Quote) {
				assert.Equal(t, int64(1200), quote.MonthlyBase)
				assert.Equal(t, int64(597), quote.AddOnMonthlySubtotal)
				assert.Equal(t, int64(1797), quote.MonthlyTotal)
				assert.Equal(t, int64(603), quote.TotalMonthlySavings)
			},
		},
		{
			name:     "empty selection prices the base retainer only",
			selected: nil,
			validate: func(t *testing.T, quote *domain.Quote) {
				assert.Equal(t, int64(1200), quote.MonthlyTotal)
				assert.Equal(t, int64(0), quote.AddOnMonthlySubtotal)
				assert.Equal(t, int64(0), quote.TotalMonthlySavings)
			},
		},
		{
			name:     "add-ons never touch the one-time setup fee",
			selected: []string{"blog", "social"},
			validate: func(t *testing.T, quote *domain.Quote) {
				assert.Equal(t, int64(2000), quote.SetupTotal)
				assert.Equal(t, int64(597+497), quote.AddOnMonthlySubtotal)
				assert.Equal(t, int64(1200+597+497), quote.MonthlyTotal)
			},
		},
		{
			name:     "stale id referencing a removed add-on is silently ignored",
			selected: []string{"blog", "discontinued-addon"},
			validate: func(t *testing.T, quote *domain.Quote) {
				assert.Equal(t, int64(1797), quote.MonthlyTotal)
				assert.Equal(t, int64(603), quote.TotalMonthlySavings)
			},
		},
		{
			name:     "selection of only unknown ids behaves as no selection",
			selected: []string{"ghost"},
			validate: func(t *testing.T, quote *domain.Quote) {
				assert.Equal(t, int64(1200), quote.MonthlyTotal)
				assert.Equal(t, int64(0), quote.TotalMonthlySavings)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := domain.NewSelectionState(tt.selected...)
			quote := Calculate(offer, blogCatalog(), selection)
			tt.validate(t, quote)
		})
	}
}

func TestCalculateDeterminism(t *testing.T) {
	offer := &domain.EffectiveOffer{
		ResolvedSetupFee:        1500,
		ResolvedMonthlyRetainer: 1200,
	}
	catalog := blogCatalog()
	selection := domain.NewSelectionState("social", "blog")

	first := Calculate(offer, catalog, selection)
	second := Calculate(offer, catalog, selection)

	assert.Equal(t, first, second)
	assert.Equal(t, first.MonthlyBase+first.AddOnMonthlySubtotal, first.MonthlyTotal)
}

func TestCalculateSavingsNeverNegative(t *testing.T) {
	offer := &domain.EffectiveOffer{ResolvedMonthlyRetainer: 1000}

	// Every catalog entry honors discounted <= original, so savings are the
	// sum of non-negative terms.
	catalog := blogCatalog()
	for _, addOn := range catalog {
		assert.LessOrEqual(t, addOn.DiscountedPrice, addOn.OriginalPrice)
	}

	quote := Calculate(offer, catalog, domain.NewSelectionState("blog", "social"))
	assert.GreaterOrEqual(t, quote.TotalMonthlySavings, int64(0))
	assert.Equal(t, int64(603+403), quote.TotalMonthlySavings)
}

func TestToggleRecomputesTotals(t *testing.T) {
	offer := &domain.EffectiveOffer{ResolvedMonthlyRetainer: 1200}
	catalog := blogCatalog()
	selection := domain.NewSelectionState()

	selection.Toggle("blog")
	quote := Calculate(offer, catalog, selection)
	assert.Equal(t, int64(1797), quote.MonthlyTotal)
	assert.Equal(t, int64(603), quote.TotalMonthlySavings)

	// Deselecting drops the add-on from both totals.
	selection.Toggle("blog")
	quote = Calculate(offer, catalog, selection)
	assert.Equal(t, int64(1200), quote.MonthlyTotal)
	assert.Equal(t, int64(0), quote.TotalMonthlySavings)
}
