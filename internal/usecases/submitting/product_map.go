package submitting

// billingProductKeys maps the engine's internal add-on keys to the billing
// provider's product keys where the two diverged historically. This is a
// compatibility shim, not a filter: keys without a mapping pass through
// unchanged.
var billingProductKeys = map[string]string{
	"blog":            "content-blog-monthly",
	"social":          "social-media-mgmt",
	"reviews":         "review-gen-monthly",
	"landing-pages":   "cro-landing-pages",
	"email-marketing": "email-nurture-monthly",
	"call-tracking":   "call-tracking-suite",
}

// TranslateAddOnIDs converts internal add-on ids into the billing
// provider's product ids, preserving order.
func TranslateAddOnIDs(ids []string) []string {
	translated := make([]string, 0, len(ids))
	for _, id := range ids {
		if productKey, ok := billingProductKeys[id]; ok {
			translated = append(translated, productKey)
			continue
		}
		translated = append(translated, id)
	}
	return translated
}
