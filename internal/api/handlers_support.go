/**
 * @description
 * Handlers for the local support API surface. Both endpoints validate the
 * required fields, forward the ticket to the backend best-effort (a
 * forwarding failure is logged, never surfaced, since the backend is not the
 * only record of the ticket reaching a human), optionally publish a
 * ticket-received event, and acknowledge the submitter.
 */
package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

// supportRequest is the inbound payload for both support endpoints. The
// category field is an accepted alias for issue_type.
type supportRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	IssueType string `json:"issue_type"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Locale    string `json:"locale"`
}

// validate checks the required fields in a fixed order and returns the
// first missing one.
func (req *supportRequest) validate() (string, bool) {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required", false
	}
	if strings.TrimSpace(req.Email) == "" {
		return "email is required", false
	}
	if strings.TrimSpace(req.IssueType) == "" && strings.TrimSpace(req.Category) == "" {
		return "issue_type is required", false
	}
	if strings.TrimSpace(req.Message) == "" {
		return "message is required", false
	}
	return "", true
}

// forwarder matches the two backend forwarding operations so both support
// handlers can share one implementation.
type forwarder func(ctx context.Context, ticket domain.SupportTicket) error

// handleSupportRequest handles POST /api/support.
func (h *Handler) handleSupportRequest(w http.ResponseWriter, r *http.Request) {
	h.handleSupportSubmission(w, r, "support", h.backend.ForwardSupportRequest)
}

// handleSupportTicket handles POST /api/support/ticket.
func (h *Handler) handleSupportTicket(w http.ResponseWriter, r *http.Request) {
	h.handleSupportSubmission(w, r, "support_ticket", h.backend.ForwardSupportTicket)
}

func (h *Handler) handleSupportSubmission(w http.ResponseWriter, r *http.Request, scope string, forward forwarder) {
	if !h.allowSupportSubmission(w, r, scope) {
		return
	}

	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg, ok := req.validate(); !ok {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	issueType := strings.TrimSpace(req.IssueType)
	if issueType == "" {
		issueType = strings.TrimSpace(req.Category)
	}

	ticket := domain.SupportTicket{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		IssueType: issueType,
		Message:   req.Message,
		Locale:    req.Locale,
		CreatedAt: time.Now().UTC(),
	}

	// Forwarding is best-effort: the submitter always gets an acknowledgement.
	if err := forward(r.Context(), ticket); err != nil {
		h.logger.Error("support ticket forwarding failed",
			"ticket_id", ticket.ID,
			"scope", scope,
			"error", err,
		)
	}

	h.publishSupportEvent(r.Context(), ticket)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"ticket_id": ticket.ID,
	})
}

// allowSupportSubmission enforces the per-client rate limit when a limiter
// is configured. Limiter errors fail open: a Redis outage must not take
// the support form down with it.
func (h *Handler) allowSupportSubmission(w http.ResponseWriter, r *http.Request, scope string) bool {
	limit := h.cfg.SupportRateLimitPerMinute
	if h.limiter == nil || limit <= 0 {
		return true
	}

	count, retryAfter, err := h.limiter.ConsumeRateLimit(r.Context(), scope, clientIP(r), limit, time.Minute)
	if err != nil {
		h.logger.Warn("support rate limiter unavailable", "error", err)
		return true
	}
	if count > limit {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		respondWithError(w, http.StatusTooManyRequests, "too many requests")
		return false
	}
	return true
}

// publishSupportEvent emits a ticket-received event when a publisher is
// configured. Failures are logged only.
func (h *Handler) publishSupportEvent(ctx context.Context, ticket domain.SupportTicket) {
	if h.publisher == nil {
		return
	}

	event := domain.SupportTicketEvent{
		TicketID:   ticket.ID,
		Email:      ticket.Email,
		IssueType:  ticket.IssueType,
		ReceivedAt: ticket.CreatedAt,
	}
	if err := h.publisher.Publish(ctx, "support.ticket.received", event); err != nil {
		h.logger.Warn("support event publish failed", "ticket_id", ticket.ID, "error", err)
	}
}

// clientIP resolves the submitting client's address, preferring the
// first hop recorded by an upstream proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
