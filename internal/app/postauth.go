/**
 * @description
 * The post-auth router: a pure, stateless classification of
 * (session presence, account status) into a destination. It is written as
 * an explicit ordered rule list evaluated first-match-wins, so the
 * precedence between the onboarding check and the subscription check stays
 * auditable and testable in isolation.
 */
package app

import "github.com/VII-77/Levqor-9.0-sub003/internal/domain"

// postAuthRule is one guarded routing rule. Rules are evaluated in order;
// the first one whose guard matches decides the destination.
type postAuthRule struct {
	name        string
	matches     func(sessionPresent bool, status domain.AccountStatus) bool
	destination domain.Destination
}

// postAuthRules is the ordered rule list. Order is load-bearing: an
// onboarded user with subscription status "none" must skip the onboarding
// rule and land on the trial rule, not the other way around.
var postAuthRules = []postAuthRule{
	{
		name: "no-session",
		matches: func(sessionPresent bool, _ domain.AccountStatus) bool {
			return !sessionPresent
		},
		destination: domain.DestinationSignIn,
	},
	{
		name: "needs-onboarding",
		matches: func(_ bool, status domain.AccountStatus) bool {
			return !status.OnboardingCompleted && status.SubscriptionStatus == domain.SubscriptionNone
		},
		destination: domain.DestinationOnboarding,
	},
	{
		name: "needs-subscription",
		matches: func(_ bool, status domain.AccountStatus) bool {
			lapsed := status.SubscriptionStatus == domain.SubscriptionNone ||
				status.SubscriptionStatus == domain.SubscriptionExpired ||
				status.SubscriptionStatus == domain.SubscriptionCanceled
			return lapsed && !status.HasActiveSubscription
		},
		destination: domain.DestinationTrial,
	},
}

// Route classifies a request into exactly one destination. Each invocation
// is a fresh, idempotent decision; no state is carried across requests.
func Route(sessionPresent bool, status domain.AccountStatus) domain.Destination {
	for _, rule := range postAuthRules {
		if rule.matches(sessionPresent, status) {
			return rule.destination
		}
	}
	return domain.DestinationDashboard
}
