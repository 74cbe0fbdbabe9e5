package billingclient

import (
	"context"
	"net/http"
	"time"

	billingdomain "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
)

type Client interface {
	CreateSubscription(ctx context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error)
}

type BillingClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient creates a new billing API client. The timeout is the only
// cancellation policy the engine applies to billing calls.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Billing.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &BillingClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
