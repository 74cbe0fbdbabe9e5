package domain

// CreateSubscriptionParams carries everything the billing collaborator
// needs to open the recurring subscription for a signed proposal.
type CreateSubscriptionParams struct {
	CustomerEmail      string   `json:"customer_email"`
	CustomerName       string   `json:"customer_name"`
	BusinessName       string   `json:"business_name"`
	AddOnProductIDs    []string `json:"addon_product_ids"`
	SignatureImageData string   `json:"signature_image_data"`
	ProposalRef        string   `json:"proposal_ref"`
}

// SubscriptionResult is the billing collaborator's answer for a created
// subscription.
type SubscriptionResult struct {
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	InvoiceID      string `json:"invoice_id"`
	InvoiceURL     string `json:"invoice_url"`
}
