package qualtrics

import (
	"context"
	"encoding/json"
	"net/url"
)

// GetAllSubscriptions returns the status of all event subscriptions. The
// payload shape is not documented by the platform, so it stays raw.
func (c *ClientImpl) GetAllSubscriptions(ctx context.Context) (json.RawMessage, error) {
	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getAllSubscriptions",
		format:  formatJSON,
	})
	if err != nil {
		return nil, err
	}

	return result.result, nil
}

// Subscribe registers a publication URL for platform events. Topics can be a
// single event name or a wildcard pattern such as "surveyengine.*".
func (c *ClientImpl) Subscribe(ctx context.Context, req *SubscribeRequest) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("Name", req.Name)
	query.Set("PublicationURL", req.PublicationURL)
	query.Set("Topics", req.Topics)

	setIfTrue(query, "Encrypt", req.Encrypt)
	setIfNotEmpty(query, "SharedKey", req.SharedKey)
	setIfNotEmpty(query, "BrandID", req.BrandID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "subscribe",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return nil, err
	}

	return result.result, nil
}
