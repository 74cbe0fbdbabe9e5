package domain

// EffectiveOffer is the resolved view of a template merged with a
// proposal's overrides. Derived on every read, never persisted.
type EffectiveOffer struct {
	SummaryText             string          `json:"summary_text"`
	ServicesSetup           []string        `json:"services_setup"`
	ServicesMonthly         []string        `json:"services_monthly"`
	SEODeliverables         SEODeliverables `json:"seo_deliverables"`
	ResolvedSetupFee        int64           `json:"resolved_setup_fee"`
	ResolvedMonthlyRetainer int64           `json:"resolved_monthly_retainer"`
	Keywords                []Keyword       `json:"keywords"`
	TotalKeywordVolume      int64           `json:"total_keyword_volume"`
}
