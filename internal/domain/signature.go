package domain

import "time"

// SignatureRecord captures the client's consent at submission time.
// Created once and never mutated afterwards.
type SignatureRecord struct {
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	SignatureImageData string    `json:"signature_image_data"`
	AgreedToTerms      bool      `json:"agreed_to_terms"`
	SignedAt           time.Time `json:"signed_at"`
}

// SelectedAddOnSnapshot is an add-on with its price locked in at signing
// time, so later catalog changes never alter a signed proposal's totals.
type SelectedAddOnSnapshot struct {
	AddOnID         string `json:"addon_id"`
	Name            string `json:"name"`
	OriginalPrice   int64  `json:"original_price"`
	DiscountedPrice int64  `json:"discounted_price"`
}

// BillingRefs are the identifiers returned by the billing collaborator for
// a created subscription.
type BillingRefs struct {
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	InvoiceID      string `json:"invoice_id"`
	InvoiceURL     string `json:"invoice_url"`
}

// SignedCommit is everything the signing flow persists in one transaction:
// the signature, the selection with locked-in prices, the computed quote,
// the ad-budget tier and the billing collaborator's identifiers.
type SignedCommit struct {
	ProposalID      string
	ReferenceID     string
	Signature       SignatureRecord
	Quote           Quote
	SelectedAddOns  []SelectedAddOnSnapshot
	FBAdsBudgetTier FBAdsBudgetTier
	BillingRefs     BillingRefs
}

// SubmissionResult is returned to the caller after a successful signing so
// the receipt view can redirect to the invoice.
type SubmissionResult struct {
	ReferenceID string    `json:"reference_id"`
	InvoiceID   string    `json:"invoice_id"`
	InvoiceURL  string    `json:"invoice_url"`
	SignedAt    time.Time `json:"signed_at"`
	Quote       *Quote    `json:"quote"`
}
