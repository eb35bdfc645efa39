package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

func postSupport(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSupportValidationRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t, &backendStub{}, &paymentsStub{}, nil, testConfig())

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing message",
			body:    `{"name":"Ada","email":"ada@example.com","issue_type":"billing"}`,
			wantErr: "message is required",
		},
		{
			name:    "missing name",
			body:    `{"email":"ada@example.com","issue_type":"billing","message":"help"}`,
			wantErr: "name is required",
		},
		{
			name:    "missing email",
			body:    `{"name":"Ada","issue_type":"billing","message":"help"}`,
			wantErr: "email is required",
		},
		{
			name:    "missing issue type and category",
			body:    `{"name":"Ada","email":"ada@example.com","message":"help"}`,
			wantErr: "issue_type is required",
		},
		{
			name:    "blank message",
			body:    `{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"   "}`,
			wantErr: "message is required",
		},
	}

	for _, path := range []string{"/api/support", "/api/support/ticket"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				rec := postSupport(t, router, path, tt.body)
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}
				var body struct {
					Error string `json:"error"`
				}
				decodeJSON(t, rec.Body, &body)
				if body.Error != tt.wantErr {
					t.Fatalf("expected error %q, got %q", tt.wantErr, body.Error)
				}
			})
		}
	}
}

func TestSupportAcksEvenWhenForwardingFails(t *testing.T) {
	backend := &backendStub{forwardErr: errors.New("backend unreachable")}
	router := newTestRouter(t, backend, &paymentsStub{}, nil, testConfig())

	rec := postSupport(t, router, "/api/support",
		`{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"help"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 regardless of forwarding failure, got %d", rec.Code)
	}
	var body struct {
		OK       bool   `json:"ok"`
		TicketID string `json:"ticket_id"`
	}
	decodeJSON(t, rec.Body, &body)
	if !body.OK {
		t.Fatal("expected ok=true")
	}
	if body.TicketID == "" {
		t.Fatal("expected a generated ticket id")
	}
	if len(backend.forwarded) != 1 {
		t.Fatalf("expected one forwarding attempt, got %d", len(backend.forwarded))
	}
}

func TestSupportCategoryAliasFillsIssueType(t *testing.T) {
	backend := &backendStub{}
	router := newTestRouter(t, backend, &paymentsStub{}, nil, testConfig())

	rec := postSupport(t, router, "/api/support/ticket",
		`{"name":"Ada","email":"ada@example.com","category":"bug","message":"broken"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(backend.forwarded) != 1 {
		t.Fatalf("expected one forwarded ticket, got %d", len(backend.forwarded))
	}
	if got := backend.forwarded[0].IssueType; got != "bug" {
		t.Fatalf("expected category alias to fill issue type, got %q", got)
	}
}

func TestSupportPublishesTicketEvent(t *testing.T) {
	backend := &backendStub{}
	publisher := &publisherStub{}
	router := newTestRouter(t, backend, &paymentsStub{}, publisher, testConfig())

	rec := postSupport(t, router, "/api/support",
		`{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"help"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected one published event, got %d", len(publisher.events))
	}
	event, ok := publisher.events[0].(domain.SupportTicketEvent)
	if !ok {
		t.Fatalf("expected SupportTicketEvent, got %T", publisher.events[0])
	}
	if event.Email != "ada@example.com" || event.IssueType != "billing" {
		t.Fatalf("unexpected event payload: %+v", event)
	}
}

func TestSupportPublishFailureDoesNotAffectResponse(t *testing.T) {
	publisher := &publisherStub{err: errors.New("amqp down")}
	router := newTestRouter(t, &backendStub{}, &paymentsStub{}, publisher, testConfig())

	rec := postSupport(t, router, "/api/support",
		`{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"help"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite publish failure, got %d", rec.Code)
	}
}

func TestSupportRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.SupportRateLimitPerMinute = 5

	tests := []struct {
		name           string
		limiter        *limiterStub
		wantCode       int
		wantRetryAfter string
	}{
		{
			name:     "under limit passes",
			limiter:  &limiterStub{count: 3},
			wantCode: http.StatusOK,
		},
		{
			name:           "over limit rejected with retry hint",
			limiter:        &limiterStub{count: 6, retryAfter: 30},
			wantCode:       http.StatusTooManyRequests,
			wantRetryAfter: "30",
		},
		{
			name:     "limiter error fails open",
			limiter:  &limiterStub{err: errors.New("redis unreachable")},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouterWithLimiter(t, &backendStub{}, &paymentsStub{}, tt.limiter, nil, cfg)

			rec := postSupport(t, router, "/api/support",
				`{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"help"}`)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Retry-After"); got != tt.wantRetryAfter {
				t.Fatalf("expected Retry-After %q, got %q", tt.wantRetryAfter, got)
			}
			if len(tt.limiter.scopes) != 1 || tt.limiter.scopes[0] != "support" {
				t.Fatalf("expected one limiter check for scope support, got %v", tt.limiter.scopes)
			}
			if tt.wantCode == http.StatusTooManyRequests {
				var body struct {
					Error string `json:"error"`
				}
				decodeJSON(t, rec.Body, &body)
				if body.Error != "too many requests" {
					t.Fatalf("unexpected error message %q", body.Error)
				}
			}
		})
	}
}

func TestSupportRateLimitSkippedWhenUnconfigured(t *testing.T) {
	limiter := &limiterStub{count: 100}
	router := newTestRouterWithLimiter(t, &backendStub{}, &paymentsStub{}, limiter, nil, testConfig())

	rec := postSupport(t, router, "/api/support",
		`{"name":"Ada","email":"ada@example.com","issue_type":"billing","message":"help"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with no limit configured, got %d", rec.Code)
	}
	if len(limiter.scopes) != 0 {
		t.Fatalf("expected no limiter checks, got %v", limiter.scopes)
	}
}

func TestSupportRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t, &backendStub{}, &paymentsStub{}, nil, testConfig())

	rec := postSupport(t, router, "/api/support", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}
