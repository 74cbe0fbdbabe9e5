package domain

// Quote holds the computed monetary totals for a given add-on selection.
// Amounts are whole US dollars. Derived, never persisted except as part of
// the signed commit snapshot.
type Quote struct {
	SetupTotal           int64 `json:"setup_total"`
	MonthlyBase          int64 `json:"monthly_base"`
	AddOnMonthlySubtotal int64 `json:"addon_monthly_subtotal"`
	MonthlyTotal         int64 `json:"monthly_total"`
	TotalMonthlySavings  int64 `json:"total_monthly_savings"`
}
