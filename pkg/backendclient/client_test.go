package backendclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

func TestFetchAccountStatusParsesBackendResponse(t *testing.T) {
	var gotPath, gotEmail, gotCacheControl string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotEmail = r.URL.Query().Get("email")
		gotCacheControl = r.Header.Get("Cache-Control")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"has_active_subscription": true,
			"subscription_status":     "active",
			"onboarding_completed":    true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status := client.FetchAccountStatus(context.Background(), "user+tag@example.com")

	if gotPath != "/api/system/account-status" {
		t.Fatalf("expected path %q, got %q", "/api/system/account-status", gotPath)
	}
	if gotEmail != "user+tag@example.com" {
		t.Fatalf("expected email to round-trip url encoding, got %q", gotEmail)
	}
	if gotCacheControl != "no-cache" {
		t.Fatalf("expected no-cache request header, got %q", gotCacheControl)
	}
	if !status.HasActiveSubscription || status.SubscriptionStatus != domain.SubscriptionActive || !status.OnboardingCompleted {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestFetchAccountStatusFailClosedOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status := client.FetchAccountStatus(context.Background(), "user@example.com")

	if status != domain.DefaultAccountStatus() {
		t.Fatalf("expected fail-closed default, got %+v", status)
	}
}

func TestFetchAccountStatusFailClosedOnNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	status := client.FetchAccountStatus(context.Background(), "user@example.com")

	if status != domain.DefaultAccountStatus() {
		t.Fatalf("expected fail-closed default, got %+v", status)
	}
}

func TestFetchAccountStatusFailClosedOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status := client.FetchAccountStatus(context.Background(), "user@example.com")

	if status != domain.DefaultAccountStatus() {
		t.Fatalf("expected fail-closed default, got %+v", status)
	}
}

func TestFetchAccountStatusCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	status := client.FetchAccountStatus(ctx, "user@example.com")

	if status != domain.DefaultAccountStatus() {
		t.Fatalf("expected fail-closed default on cancelled context, got %+v", status)
	}
}

func TestForwardSupportTicketPostsJSON(t *testing.T) {
	var gotPath string
	var gotTicket domain.SupportTicket
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotTicket)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ticket := domain.SupportTicket{
		ID:        "tkt-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		IssueType: "billing",
		Message:   "help",
		CreatedAt: time.Now().UTC(),
	}

	client := NewClient(server.URL)
	if err := client.ForwardSupportTicket(context.Background(), ticket); err != nil {
		t.Fatalf("ForwardSupportTicket returned error: %v", err)
	}
	if gotPath != "/api/support/ticket" {
		t.Fatalf("expected path %q, got %q", "/api/support/ticket", gotPath)
	}
	if gotTicket.ID != "tkt-1" || gotTicket.Email != "ada@example.com" {
		t.Fatalf("unexpected forwarded ticket: %+v", gotTicket)
	}
}

func TestForwardSupportRequestReturnsErrorOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/system/support-request" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ForwardSupportRequest(context.Background(), domain.SupportTicket{ID: "tkt-2"})
	if err == nil {
		t.Fatal("expected error for non-2xx backend response")
	}
}
