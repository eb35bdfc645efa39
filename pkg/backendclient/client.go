/**
 * @description
 * This package provides a client for the Levqor backend API. It encapsulates
 * the account-status lookup used by the post-auth router and the best-effort
 * forwarding of support tickets.
 *
 * The account-status fetch deliberately never returns an error: any network
 * failure, timeout, or non-200 response is substituted with the fail-closed
 * default status, which routes the user toward onboarding rather than the
 * dashboard. A backend outage is therefore indistinguishable from a brand-new
 * user.
 *
 * @dependencies
 * - context, encoding/json, fmt, net/http, net/url, time: Standard Go libraries.
 */
package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

// Client is a client for the Levqor backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new backend API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchAccountStatus retrieves the subscription and onboarding state for a
// user. The response is never cached and the call is never retried. On any
// failure the fail-closed default status is returned instead of an error.
func (c *Client) FetchAccountStatus(ctx context.Context, email string) domain.AccountStatus {
	endpoint := fmt.Sprintf("%s/api/system/account-status?email=%s", c.BaseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Error creating account-status request: %v", err)
		return domain.DefaultAccountStatus()
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Error calling account-status endpoint: %v", err)
		return domain.DefaultAccountStatus()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Account-status endpoint returned status %d", resp.StatusCode)
		return domain.DefaultAccountStatus()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error reading account-status response: %v", err)
		return domain.DefaultAccountStatus()
	}

	var status domain.AccountStatus
	if err := json.Unmarshal(body, &status); err != nil {
		log.Printf("Error parsing account-status response: %v", err)
		return domain.DefaultAccountStatus()
	}

	if status.SubscriptionStatus == "" {
		status.SubscriptionStatus = domain.SubscriptionNone
	}

	return status
}

// ForwardSupportRequest forwards a support ticket to the backend's
// system support-request endpoint. Errors are returned for logging only;
// callers never surface them to the original submitter.
func (c *Client) ForwardSupportRequest(ctx context.Context, ticket domain.SupportTicket) error {
	return c.postJSON(ctx, "/api/system/support-request", ticket)
}

// ForwardSupportTicket forwards a support ticket to the backend's ticket
// endpoint. Same best-effort semantics as ForwardSupportRequest.
func (c *Client) ForwardSupportTicket(ctx context.Context, ticket domain.SupportTicket) error {
	return c.postJSON(ctx, "/api/support/ticket", ticket)
}

// Ping probes the backend root for the health endpoint. Reachability only;
// the shell's own health report never depends on the result.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	return nil
}
