package domain

// Keyword is a single target-keyword entry with its research metrics.
// Reference data only, never mutated by the engine.
type Keyword struct {
	Keyword          string `json:"keyword"`
	Volume           int64  `json:"volume"`
	Intent           string `json:"intent"`
	CompetitionLevel string `json:"competition_level"`
}

type RotatingDeliverable struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

type SEODeliverables struct {
	EveryMonth []string              `json:"every_month"`
	Rotating   []RotatingDeliverable `json:"rotating"`
}

// IndustryTemplate is the industry-level default offer. One template may
// back many proposals; it is created and edited by the admin tooling and
// is read-only from the engine's perspective.
type IndustryTemplate struct {
	Industry            string          `json:"industry"`
	DisplayName         string          `json:"display_name"`
	ExecutiveSummary    string          `json:"executive_summary"`
	TargetKeywords      []Keyword       `json:"target_keywords"`
	ServicesSetup       []string        `json:"services_setup"`
	ServicesMonthly     []string        `json:"services_monthly"`
	SEODeliverables     SEODeliverables `json:"seo_deliverables"`
	BaseSetupFee        int64           `json:"base_setup_fee"`
	BaseMonthlyRetainer int64           `json:"base_monthly_retainer"`
}
