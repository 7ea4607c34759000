package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrMerchantNotFound = errors.New("merchant not found")

// Client fetches storefront bundles from the catalog service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// GetStorefront loads the full render bundle for one merchant.
func (c *Client) GetStorefront(ctx context.Context, merchantID string) (*StorefrontBundle, error) {
	if merchantID == "" {
		return nil, ErrMerchantNotFound
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: "/api/storefronts/" + merchantID})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch storefront %s: %w", merchantID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decode
	case http.StatusNotFound:
		return nil, ErrMerchantNotFound
	default:
		return nil, fmt.Errorf("catalog returned status %d for merchant %s", resp.StatusCode, merchantID)
	}

	var bundle StorefrontBundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("decode storefront %s: %w", merchantID, err)
	}

	if bundle.Currency == "" {
		bundle.Currency = "USD"
	}
	if bundle.Locale == "" {
		bundle.Locale = "en"
	}

	return &bundle, nil
}
