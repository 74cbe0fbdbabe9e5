package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/lifecycle"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/proposing"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/submitting"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/apiErrors"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/log"
)

// GetProposal renders the proposal view for a slug. The first fetch flips
// the proposal from draft to viewed.
func GetProposal(viewer proposing.ProposalViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Proposal slug not provided", nil)
			return
		}

		view, err := viewer.GetProposalView(r.Context(), slug)
		if err != nil {
			if errors.Is(err, domain.ErrProposalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProposalNotFound, "Proposal not found or expired", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Failed to load proposal view")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load proposal", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

type previewQuoteRequest struct {
	SelectedAddOnIDs []string `json:"selected_addon_ids"`
}

// PreviewQuote reprices an explicit add-on selection. Called by the
// frontend on every toggle.
func PreviewQuote(viewer proposing.ProposalViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Proposal slug not provided", nil)
			return
		}

		var req previewQuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request", nil)
			return
		}

		quote, err := viewer.PreviewQuote(r.Context(), slug, req.SelectedAddOnIDs)
		if err != nil {
			if errors.Is(err, domain.ErrProposalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProposalNotFound, "Proposal not found or expired", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Failed to compute quote preview")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to compute quote", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, quote)
	}
}

// SubmitProposal performs the one-shot signing. Every engine error kind is
// translated into a categorized API error before it reaches the client.
func SubmitProposal(submitter submitting.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Proposal slug not provided", nil)
			return
		}

		var req submitting.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request", nil)
			return
		}

		result, err := submitter.Submit(r.Context(), slug, req)
		if err != nil {
			writeSubmitError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	}
}

func writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *submitting.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
			"Some signing fields are missing or invalid", validationErr.Fields)
		return
	}

	var violation *lifecycle.Violation
	if errors.As(err, &violation) {
		apiErrors.WriteError(w, apiErrors.ErrLifecycleViolation,
			"This proposal is no longer editable", nil)
		return
	}

	if errors.Is(err, domain.ErrProposalNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrProposalNotFound, "Proposal not found or expired", nil)
		return
	}

	if errors.Is(err, submitting.ErrSubmissionInProgress) {
		apiErrors.WriteError(w, apiErrors.ErrLifecycleViolation,
			"A submission is already being processed for this proposal", nil)
		return
	}

	var billingErr *submitting.BillingError
	if errors.As(err, &billingErr) {
		apiErrors.WriteError(w, apiErrors.ErrBillingFailed,
			"We could not start your subscription. Please try again.", nil)
		return
	}

	var reconciliationErr *submitting.ReconciliationError
	if errors.As(err, &reconciliationErr) {
		// Deliberately not a retry prompt: retrying risks a duplicate
		// charge. The coordinator already flagged this for the operator.
		apiErrors.WriteError(w, apiErrors.ErrReconciliationRequired,
			"Your signature was received. Our team will follow up to finish your setup.", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Unexpected submission error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to submit proposal", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Failed to encode response")
	}
}
