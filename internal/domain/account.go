/**
 * @description
 * This file defines the core domain models for the Levqor web shell:
 * the authenticated session, the account status fetched from the backend,
 * and the destinations the post-auth router can resolve to.
 */
package domain

// SubscriptionStatus enumerates the subscription states reported by the backend.
type SubscriptionStatus string

const (
	SubscriptionNone     SubscriptionStatus = "none"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// AccountStatus is the subscription and onboarding state for a user,
// fetched fresh from the backend on every post-auth routing decision.
type AccountStatus struct {
	HasActiveSubscription bool               `json:"has_active_subscription"`
	SubscriptionStatus    SubscriptionStatus `json:"subscription_status"`
	OnboardingCompleted   bool               `json:"onboarding_completed"`
}

// DefaultAccountStatus is the fail-closed value substituted when the
// backend cannot be reached. It routes the user toward onboarding rather
// than the dashboard; a backend outage therefore looks like a new user.
func DefaultAccountStatus() AccountStatus {
	return AccountStatus{
		HasActiveSubscription: false,
		SubscriptionStatus:    SubscriptionNone,
		OnboardingCompleted:   false,
	}
}

// Session is the record of an authenticated user for the current request.
// It is issued by the external auth subsystem; this service only reads it.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Destination is the outcome of the post-auth routing decision.
type Destination string

const (
	DestinationSignIn     Destination = "signin"
	DestinationOnboarding Destination = "onboarding"
	DestinationTrial      Destination = "trial"
	DestinationDashboard  Destination = "dashboard"
)
