package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
	"github.com/VII-77/Levqor-9.0-sub003/internal/i18n"
)

type fetcherStub struct {
	status domain.AccountStatus
	calls  int
}

func (s *fetcherStub) FetchAccountStatus(ctx context.Context, email string) domain.AccountStatus {
	s.calls++
	return s.status
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveWithoutSessionSkipsBackendFetch(t *testing.T) {
	fetcher := &fetcherStub{}
	svc := NewEntryService(fetcher, testLogger())

	destination, path := svc.Resolve(context.Background(), nil, i18n.DefaultLocale)
	if destination != domain.DestinationSignIn {
		t.Fatalf("expected %q, got %q", domain.DestinationSignIn, destination)
	}
	if path != "/signin" {
		t.Fatalf("expected %q, got %q", "/signin", path)
	}
	if fetcher.calls != 0 {
		t.Fatalf("expected no backend fetch without a session, got %d calls", fetcher.calls)
	}
}

func TestResolveFetchesStatusBeforeRouting(t *testing.T) {
	fetcher := &fetcherStub{
		status: domain.AccountStatus{
			HasActiveSubscription: true,
			SubscriptionStatus:    domain.SubscriptionActive,
			OnboardingCompleted:   true,
		},
	}
	svc := NewEntryService(fetcher, testLogger())
	session := &domain.Session{Email: "user@example.com"}

	destination, path := svc.Resolve(context.Background(), session, i18n.LocaleDE)
	if destination != domain.DestinationDashboard {
		t.Fatalf("expected %q, got %q", domain.DestinationDashboard, destination)
	}
	if path != "/de/dashboard" {
		t.Fatalf("expected %q, got %q", "/de/dashboard", path)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected exactly one backend fetch, got %d", fetcher.calls)
	}
}

func TestResolveFailClosedStatusRoutesToOnboarding(t *testing.T) {
	// The gateway substitutes the fail-closed default on any failure, so a
	// backend outage must resolve the same way a brand-new user does.
	fetcher := &fetcherStub{status: domain.DefaultAccountStatus()}
	svc := NewEntryService(fetcher, testLogger())
	session := &domain.Session{Email: "user@example.com"}

	destination, path := svc.Resolve(context.Background(), session, i18n.DefaultLocale)
	if destination != domain.DestinationOnboarding {
		t.Fatalf("expected %q, got %q", domain.DestinationOnboarding, destination)
	}
	if path != "/onboarding" {
		t.Fatalf("expected %q, got %q", "/onboarding", path)
	}
}
