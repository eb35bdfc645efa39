/**
 * @description
 * Handler for billing checkout-session verification. The endpoint is pure
 * request/response proxying to the payments provider with a typed error
 * surface; there is no retry or idempotency logic here.
 */
package api

import (
	"errors"
	"net/http"

	"github.com/VII-77/Levqor-9.0-sub003/pkg/stripeclient"
)

// handleVerifyBillingSession handles GET /api/billing/verify-session.
//
// Error surface:
//   - 400 missing_session_id    no session_id query parameter
//   - 500 missing_stripe_key    provider credential not configured
//   - 400 session_not_complete  unknown session or checkout not completed
//   - 500 verification_failed   transport or decoding failure
func (h *Handler) handleVerifyBillingSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		respondWithError(w, http.StatusBadRequest, "missing_session_id")
		return
	}

	if h.cfg.StripeSecretKey == "" {
		respondWithError(w, http.StatusInternalServerError, "missing_stripe_key")
		return
	}

	session, err := h.payments.GetCheckoutSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, stripeclient.ErrSessionNotFound) {
			respondWithError(w, http.StatusBadRequest, "session_not_complete")
			return
		}
		h.logger.Error("checkout session verification failed", "session_id", sessionID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "verification_failed")
		return
	}

	if session.Status != "complete" {
		respondWithError(w, http.StatusBadRequest, "session_not_complete")
		return
	}

	plan := session.Metadata["plan"]
	if plan == "" {
		plan = "unknown"
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"plan":   plan,
		"status": session.Status,
		"email":  session.CustomerDetails.Email,
	})
}
