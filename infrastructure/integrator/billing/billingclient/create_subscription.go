package billingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"

	billingdomain "github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/integrator/billing/domain"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/log"
	"github.com/leadmetrik/leadmetrik-site-sub000/pkg/utils"
	"github.com/pkg/errors"
)

// CreateSubscription opens the customer, subscription and first invoice on
// the billing provider in a single call. It is issued at most once per
// proposal; the coordinator never retries it on its own.
func (c *BillingClient) CreateSubscription(ctx context.Context, params billingdomain.CreateSubscriptionParams) (*billingdomain.SubscriptionResult, error) {
	endpoint, err := url.Parse(c.config.Billing.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse billing base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "/subscriptions")

	body, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode subscription request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription request")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Billing.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call billing API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		billingErr := &billingdomain.Error{StatusCode: resp.StatusCode}

		// Best effort: the provider's error payload may carry a code and
		// message worth surfacing.
		if decodeErr := json.NewDecoder(resp.Body).Decode(billingErr); decodeErr != nil {
			billingErr.Message = resp.Status
		}

		return nil, billingErr
	}

	result := &billingdomain.SubscriptionResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, errors.Wrap(err, "failed to decode subscription response")
	}

	log.ForContext(ctx).WithField("subscription", utils.PrettyJson(result)).
		Debug("Billing subscription created")

	return result, nil
}
