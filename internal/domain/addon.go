package domain

// AddOn is an optional month-to-month service the client can toggle on a
// proposal. Prices are whole US dollars; DiscountedPrice is the client
// rate and must never exceed OriginalPrice.
type AddOn struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Icon            string   `json:"icon"`
	Details         []string `json:"details"`
	OriginalPrice   int64    `json:"original_price"`
	DiscountedPrice int64    `json:"discounted_price"`
	Highlight       *string  `json:"highlight"`
	SortOrder       int      `json:"sort_order"`
}

// MonthlySavings is the discount the client receives while the add-on is
// selected.
func (a *AddOn) MonthlySavings() int64 {
	return a.OriginalPrice - a.DiscountedPrice
}
