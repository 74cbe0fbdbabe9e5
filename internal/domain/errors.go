package domain

import "errors"

// ErrProposalNotFound is returned when a slug resolves to no proposal. The
// presentation layer shows it as the terminal "proposal not found or
// expired" view.
var ErrProposalNotFound = errors.New("proposal not found")

// ErrIndustryTemplateNotFound indicates a proposal references an industry
// with no template in the catalog.
var ErrIndustryTemplateNotFound = errors.New("industry template not found")
