/**
 * @description
 * This package provides a client for retrieving checkout sessions from the
 * payments provider. It encapsulates the authenticated HTTP request to the
 * provider's checkout-session endpoint and the parsing of its response.
 * There is no retry or idempotency logic; the caller decides how failures
 * map onto its own error surface.
 *
 * @dependencies
 * - context, encoding/json, errors, fmt, net/http, time: Standard Go libraries.
 */
package stripeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrSessionNotFound is returned when the provider does not know the
// checkout-session identifier.
var ErrSessionNotFound = errors.New("checkout session not found")

// Client is a client for the payments provider API.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// NewClient creates a new payments provider client. baseURL is normally the
// provider's public API host; tests point it at a stub server.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CheckoutSession is the subset of the provider's checkout-session resource
// that the shell cares about.
type CheckoutSession struct {
	ID              string            `json:"id"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

// ErrorResponse represents an error payload from the provider API.
type ErrorResponse struct {
	ErrorBody struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *ErrorResponse) Error() string {
	if e.ErrorBody.Message != "" {
		return fmt.Sprintf("provider api error: %s - %s", e.ErrorBody.Type, e.ErrorBody.Message)
	}
	return "unknown provider api error"
}

// GetCheckoutSession retrieves a checkout session by its opaque identifier.
// An unknown identifier yields ErrSessionNotFound; transport and decoding
// failures are returned as-is.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.BaseURL, url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payments provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSessionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.ErrorBody.Message != "" {
			return nil, &apiErr
		}
		return nil, fmt.Errorf("payments provider returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &session, nil
}
