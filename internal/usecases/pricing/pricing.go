// Package pricing computes quote totals for an effective offer and the
// client's current add-on selection. Everything here is a pure function of
// its inputs: the catalog and selection are passed in explicitly, so two
// calls with the same arguments always return identical totals.
package pricing

import (
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
)

// CatalogByID indexes the add-on catalog for quote calculation.
func CatalogByID(addOns []*domain.AddOn) map[string]*domain.AddOn {
	catalog := make(map[string]*domain.AddOn, len(addOns))
	for _, addOn := range addOns {
		catalog[addOn.ID] = addOn
	}
	return catalog
}

// Calculate prices the selection against the offer. Selected ids missing
// from the catalog are stale references to removed add-ons and are silently
// ignored; they must neither crash the calculation nor inflate totals.
// Add-ons are month-to-month only and never touch the one-time setup fee.
func Calculate(offer *domain.EffectiveOffer, catalog map[string]*domain.AddOn, selection *domain.SelectionState) *domain.Quote {
	quote := &domain.Quote{
		SetupTotal:  offer.ResolvedSetupFee,
		MonthlyBase: offer.ResolvedMonthlyRetainer,
	}

	for _, id := range selection.IDs() {
		addOn, ok := catalog[id]
		if !ok {
			continue
		}

		quote.AddOnMonthlySubtotal += addOn.DiscountedPrice
		quote.TotalMonthlySavings += addOn.MonthlySavings()
	}

	quote.MonthlyTotal = quote.MonthlyBase + quote.AddOnMonthlySubtotal

	return quote
}
