package domain

// CatalogSnapshot is an immutable view of the catalog shared across
// proposal sessions. The engine never writes to the catalog, so a snapshot
// can be cached and handed out without locking.
type CatalogSnapshot struct {
	Templates  map[string]*IndustryTemplate
	AddOns     []*AddOn
	AddOnsByID map[string]*AddOn
}

func NewCatalogSnapshot(templates []*IndustryTemplate, addOns []*AddOn) *CatalogSnapshot {
	snapshot := &CatalogSnapshot{
		Templates:  make(map[string]*IndustryTemplate, len(templates)),
		AddOns:     addOns,
		AddOnsByID: make(map[string]*AddOn, len(addOns)),
	}

	for _, tmpl := range templates {
		snapshot.Templates[tmpl.Industry] = tmpl
	}

	for _, addOn := range addOns {
		snapshot.AddOnsByID[addOn.ID] = addOn
	}

	return snapshot
}
