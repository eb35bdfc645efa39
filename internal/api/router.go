/**
 * @description
 * This file sets up the HTTP router for the web shell using the go-chi/chi
 * router. The middleware order is deliberate: host canonicalization runs
 * before everything else so downstream components never observe the
 * apex-host form, then the static security headers, then the standard
 * chi middleware, then session extraction.
 *
 * Page routes are registered once per supported locale from the locale
 * table, which keeps that enumeration the single source of truth for both
 * route generation and validation: a path with an unsupported locale prefix
 * matches nothing and falls through to the not-found shell.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/VII-77/Levqor-9.0-sub003/internal/config"
	"github.com/VII-77/Levqor-9.0-sub003/internal/i18n"
)

// NewRouter creates a new Chi router and registers all routes.
func NewRouter(h *Handler, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Edge policy first: the static security headers go on every response,
	// including the canonical-host redirect itself.
	r.Use(SecurityHeaders)
	r.Use(CanonicalHost(cfg.ApexDomain, cfg.CanonicalHost))

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(SessionMiddleware(cfg.SessionSecret, cfg.SessionCookieName))

	// API surface
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300, // Maximum value not ignored by any major browsers
		}))

		r.Get("/health", h.handleHealth)
		r.Get("/version", h.handleVersion)
		r.Get("/auth/error", h.handleAuthError)
		r.Get("/billing/verify-session", h.handleVerifyBillingSession)
		r.Post("/support", h.handleSupportRequest)
		r.Post("/support/ticket", h.handleSupportTicket)
	})

	// Pages, once per supported locale. The default locale lives at the
	// root with no prefix; every other locale under its own segment.
	registerPages := func(r chi.Router, locale i18n.Locale) {
		r.Get("/", h.pageHome(locale))
		r.Get("/pricing", h.pagePricing(locale))
		r.Get("/signin", h.pageStatic(locale, "page.signin"))
		r.Get("/onboarding", h.pageStatic(locale, "page.onboarding"))
		r.Get("/trial", h.pageStatic(locale, "page.trial"))
		r.Get("/dashboard", h.pageDashboard(locale))
		r.Get("/launchpad", h.pageLaunchpad(locale))
	}

	for _, locale := range i18n.Supported() {
		locale := locale
		if locale == i18n.DefaultLocale {
			registerPages(r, locale)
			continue
		}
		r.Route("/"+string(locale), func(r chi.Router) {
			registerPages(r, locale)
		})
	}

	r.NotFound(http.HandlerFunc(h.handleNotFound))

	return r
}
