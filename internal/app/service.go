/**
 * @description
 * The entry service orchestrates the post-login flow: fetch the account
 * status for the authenticated user (strictly before routing), classify
 * via the post-auth rules, and translate the destination into a
 * locale-prefixed redirect path.
 */
package app

import (
	"context"
	"log/slog"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
	"github.com/VII-77/Levqor-9.0-sub003/internal/i18n"
)

// AccountStatusFetcher defines the backend lookup the entry service needs.
type AccountStatusFetcher interface {
	FetchAccountStatus(ctx context.Context, email string) domain.AccountStatus
}

// EntryService resolves where an inbound user should land after sign-in.
type EntryService struct {
	backend AccountStatusFetcher
	logger  *slog.Logger
}

// NewEntryService creates a new entry service.
func NewEntryService(backend AccountStatusFetcher, logger *slog.Logger) *EntryService {
	return &EntryService{backend: backend, logger: logger}
}

// destinationPaths maps each destination to its unprefixed route.
var destinationPaths = map[domain.Destination]string{
	domain.DestinationSignIn:     "/signin",
	domain.DestinationOnboarding: "/onboarding",
	domain.DestinationTrial:      "/trial",
	domain.DestinationDashboard:  "/dashboard",
}

// Resolve determines the redirect target for a post-login request. session
// is nil when the request carries no valid session. The account-status
// fetch completes (or fail-defaults) before any routing rule is evaluated.
func (s *EntryService) Resolve(ctx context.Context, session *domain.Session, locale i18n.Locale) (domain.Destination, string) {
	var status domain.AccountStatus
	sessionPresent := session != nil

	if sessionPresent {
		status = s.backend.FetchAccountStatus(ctx, session.Email)
		s.logger.Info("resolved account status",
			"email", session.Email,
			"subscription_status", status.SubscriptionStatus,
			"onboarding_completed", status.OnboardingCompleted,
		)
	}

	destination := Route(sessionPresent, status)
	return destination, i18n.PathFor(locale, destinationPaths[destination])
}
