package billing

import (
	"context"

	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/billingclient"
	billingdomain "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
)

type BillingIntegrator interface {
	CreateSubscription(ctx context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error)
}

type BillingService struct {
	cfg    *config.Config
	Client billingclient.Client
}

func New(cfg *config.Config, client billingclient.Client) BillingIntegrator {
	return &BillingService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BillingService) CreateSubscription(ctx context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error) {
	resp, err := s.Client.CreateSubscription(ctx, params)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
