package app

import (
	"testing"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

func TestRouteRuleOrder(t *testing.T) {
	tests := []struct {
		name           string
		sessionPresent bool
		status         domain.AccountStatus
		want           domain.Destination
	}{
		{
			name:           "no session always signs in",
			sessionPresent: false,
			status: domain.AccountStatus{
				HasActiveSubscription: true,
				SubscriptionStatus:    domain.SubscriptionActive,
				OnboardingCompleted:   true,
			},
			want: domain.DestinationSignIn,
		},
		{
			name:           "new user goes to onboarding",
			sessionPresent: true,
			status:         domain.DefaultAccountStatus(),
			want:           domain.DestinationOnboarding,
		},
		{
			name:           "onboarded user without subscription goes to trial, not onboarding",
			sessionPresent: true,
			status: domain.AccountStatus{
				SubscriptionStatus:  domain.SubscriptionNone,
				OnboardingCompleted: true,
			},
			want: domain.DestinationTrial,
		},
		{
			name:           "expired subscription goes to trial",
			sessionPresent: true,
			status: domain.AccountStatus{
				SubscriptionStatus:  domain.SubscriptionExpired,
				OnboardingCompleted: true,
			},
			want: domain.DestinationTrial,
		},
		{
			name:           "canceled subscription goes to trial even mid-onboarding",
			sessionPresent: true,
			status: domain.AccountStatus{
				SubscriptionStatus:  domain.SubscriptionCanceled,
				OnboardingCompleted: false,
			},
			want: domain.DestinationTrial,
		},
		{
			name:           "active subscriber lands on the dashboard",
			sessionPresent: true,
			status: domain.AccountStatus{
				HasActiveSubscription: true,
				SubscriptionStatus:    domain.SubscriptionActive,
				OnboardingCompleted:   true,
			},
			want: domain.DestinationDashboard,
		},
		{
			name:           "trialing subscriber lands on the dashboard",
			sessionPresent: true,
			status: domain.AccountStatus{
				HasActiveSubscription: true,
				SubscriptionStatus:    domain.SubscriptionTrialing,
				OnboardingCompleted:   false,
			},
			want: domain.DestinationDashboard,
		},
		{
			name:           "active flag overrides a lapsed status label",
			sessionPresent: true,
			status: domain.AccountStatus{
				HasActiveSubscription: true,
				SubscriptionStatus:    domain.SubscriptionExpired,
				OnboardingCompleted:   true,
			},
			want: domain.DestinationDashboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.sessionPresent, tt.status)
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestRouteTotality walks the full input grid and checks that every
// combination resolves to exactly one destination matching the ordered
// rule semantics.
func TestRouteTotality(t *testing.T) {
	statuses := []domain.SubscriptionStatus{
		domain.SubscriptionNone,
		domain.SubscriptionActive,
		domain.SubscriptionTrialing,
		domain.SubscriptionExpired,
		domain.SubscriptionCanceled,
	}

	expected := func(sessionPresent bool, status domain.AccountStatus) domain.Destination {
		switch {
		case !sessionPresent:
			return domain.DestinationSignIn
		case !status.OnboardingCompleted && status.SubscriptionStatus == domain.SubscriptionNone:
			return domain.DestinationOnboarding
		case (status.SubscriptionStatus == domain.SubscriptionNone ||
			status.SubscriptionStatus == domain.SubscriptionExpired ||
			status.SubscriptionStatus == domain.SubscriptionCanceled) && !status.HasActiveSubscription:
			return domain.DestinationTrial
		default:
			return domain.DestinationDashboard
		}
	}

	known := map[domain.Destination]bool{
		domain.DestinationSignIn:     true,
		domain.DestinationOnboarding: true,
		domain.DestinationTrial:      true,
		domain.DestinationDashboard:  true,
	}

	for _, sessionPresent := range []bool{true, false} {
		for _, onboarded := range []bool{true, false} {
			for _, active := range []bool{true, false} {
				for _, subStatus := range statuses {
					status := domain.AccountStatus{
						HasActiveSubscription: active,
						SubscriptionStatus:    subStatus,
						OnboardingCompleted:   onboarded,
					}
					got := Route(sessionPresent, status)
					if !known[got] {
						t.Fatalf("session=%v status=%+v produced unknown destination %q",
							sessionPresent, status, got)
					}
					if want := expected(sessionPresent, status); got != want {
						t.Fatalf("session=%v status=%+v: expected %q, got %q",
							sessionPresent, status, want, got)
					}
				}
			}
		}
	}
}
