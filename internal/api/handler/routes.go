package handler

import (
	"net/http"

	"github.com/leadmetrik/leadmetrik-site-sub000/internal/api/handler/router"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/proposing"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/usecases/submitting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Proposals exposes the client-facing proposal surface. Proposals are
// addressed by unguessable slug; there is no authenticated admin surface
// in this service.
func Proposals(viewer proposing.ProposalViewer, submitter submitting.Submitter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/proposals/:slug",
			Method:  http.MethodGet,
			Handler: GetProposal(viewer),
		},
		{
			Path:    "/v1/proposals/:slug/quote",
			Method:  http.MethodPost,
			Handler: PreviewQuote(viewer),
		},
		{
			Path:    "/v1/proposals/:slug/submit",
			Method:  http.MethodPost,
			Handler: SubmitProposal(submitter),
		},
	}
}
