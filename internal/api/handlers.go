/**
 * @description
 * This file contains the HTTP handlers for the shell's small API surface:
 * health, version, and auth-error reporting, plus the shared JSON response
 * helpers used by every handler in the package.
 */
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/VII-77/Levqor-9.0-sub003/internal/app"
	"github.com/VII-77/Levqor-9.0-sub003/internal/config"
	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
	"github.com/VII-77/Levqor-9.0-sub003/internal/version"
	"github.com/VII-77/Levqor-9.0-sub003/pkg/stripeclient"
)

// BackendClient is the surface of the backend API client the handlers need.
type BackendClient interface {
	ForwardSupportRequest(ctx context.Context, ticket domain.SupportTicket) error
	ForwardSupportTicket(ctx context.Context, ticket domain.SupportTicket) error
	Ping(ctx context.Context) error
}

// PaymentsClient is the surface of the payments provider client.
type PaymentsClient interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripeclient.CheckoutSession, error)
}

// EventPublisher is the surface of the event producer. A nil publisher
// disables event publishing.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
}

// RateLimiter is the surface of the request rate limiter. A nil limiter
// disables enforcement.
type RateLimiter interface {
	ConsumeRateLimit(ctx context.Context, scope, subject string, limit int, window time.Duration) (count int, retryAfterSeconds int, err error)
}

// Handler holds the collaborators the HTTP handlers interact with.
type Handler struct {
	entry     *app.EntryService
	backend   BackendClient
	payments  PaymentsClient
	limiter   RateLimiter
	publisher EventPublisher
	cfg       config.Config
	logger    *slog.Logger
}

// NewHandler creates a new Handler with the given collaborators. limiter
// and publisher may be nil; the corresponding features are then disabled.
func NewHandler(
	entry *app.EntryService,
	backend BackendClient,
	payments PaymentsClient,
	limiter RateLimiter,
	publisher EventPublisher,
	cfg config.Config,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		entry:     entry,
		backend:   backend,
		payments:  payments,
		limiter:   limiter,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// handleHealth reports service health. The backend field reflects a
// best-effort reachability probe, but the overall status is always healthy:
// this endpoint deliberately never reports unhealthy to the caller.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	backendState := "reachable"

	probeCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.backend.Ping(probeCtx); err != nil {
		h.logger.Warn("backend health probe failed", "error", err)
		backendState = "unreachable"
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"ok":      true,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"backend": backendState,
	})
}

// handleVersion serves the build metadata baked in at compile time.
func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, version.Get())
}

// authErrorDescriptions maps auth error codes to human-readable text.
var authErrorDescriptions = map[string]string{
	"Configuration":         "There is a problem with the server configuration.",
	"AccessDenied":          "Access was denied. You may not have permission to sign in.",
	"Verification":          "The sign-in link is no longer valid. It may have been used already or it may have expired.",
	"OAuthSignin":           "Error constructing the authorization request to the identity provider.",
	"OAuthCallback":         "Error handling the response from the identity provider.",
	"OAuthCreateAccount":    "Could not create an account with the identity provider.",
	"EmailCreateAccount":    "Could not create an email account for this user.",
	"Callback":              "Error during the sign-in callback.",
	"OAuthAccountNotLinked": "This email is already associated with another sign-in method.",
	"EmailSignin":           "The sign-in email could not be sent.",
	"CredentialsSignin":     "Sign in failed. Check the details you provided are correct.",
	"SessionRequired":       "You must be signed in to view this page.",
}

const defaultAuthErrorDescription = "An unexpected authentication error occurred. Please try again."

// handleAuthError reports a sign-in failure back to the client in a
// structured form. Unrecognized codes get the generic description.
func (h *Handler) handleAuthError(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("error")
	provider := r.URL.Query().Get("provider")

	description, ok := authErrorDescriptions[code]
	if !ok {
		description = defaultAuthErrorDescription
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":          false,
		"error":       code,
		"description": description,
		"provider":    provider,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// respondWithJSON is a helper function to write JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes the standard error envelope.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
