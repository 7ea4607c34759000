package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// OrderClient submits a checkout payload to the external booking/order
// service and returns the created order id.
type OrderClient interface {
	CreateOrder(ctx context.Context, sub *Submission) (string, error)
}

// HTTPOrderClient talks to the order service over its JSON API.
type HTTPOrderClient struct {
	baseURL *url.URL
	http    *http.Client
}

func NewHTTPOrderClient(baseURL string, httpClient *http.Client) (*HTTPOrderClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid order base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPOrderClient{baseURL: u, http: httpClient}, nil
}

func (c *HTTPOrderClient) CreateOrder(ctx context.Context, sub *Submission) (string, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("marshal submission: %w", err)
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: "/api/orders"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var out struct {
			OrderID string `json:"orderId"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("decode order response: %w", err)
		}
		if out.OrderID == "" {
			return "", fmt.Errorf("order service returned no order id")
		}
		return out.OrderID, nil
	}

	// The order service reports failures as {reason, message}; pass the
	// structure through so callers can branch on the reason.
	var se SubmitError
	if err := json.NewDecoder(resp.Body).Decode(&se); err != nil || se.Reason == "" {
		return "", &SubmitError{
			Reason:  "unexpected_status",
			Message: fmt.Sprintf("order service returned status %d", resp.StatusCode),
		}
	}
	return "", &se
}
