/**
 * @description
 * Locale-aware page handlers for the marketing and app shell. Pages render
 * a minimal HTML shell: the html lang attribute and every chrome label come
 * from the locale's dictionary, so each rendered path is unambiguously
 * tagged with its locale. The unknown-locale/unknown-route case renders the
 * not-found shell in the default locale's chrome.
 */
package api

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/VII-77/Levqor-9.0-sub003/internal/i18n"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Title}} · Levqor</title>
</head>
<body>
<nav>
<a href="{{.HomePath}}">{{.NavHome}}</a>
<a href="{{.PricingPath}}">{{.NavPricing}}</a>
<a href="{{.DashboardPath}}">{{.NavDashboard}}</a>
<a href="{{.SignInPath}}">{{.NavSignIn}}</a>
</nav>
<main>
<h1>{{.Title}}</h1>
{{if .Body}}<p>{{.Body}}</p>{{end}}
{{range .Plans}}<section><h2>{{.Name}}</h2><p>{{.Price}}</p></section>
{{end}}
</main>
</body>
</html>
`))

// shellData is the template payload for one rendered page.
type shellData struct {
	Lang          string
	Dir           string
	Title         string
	Body          string
	HomePath      string
	PricingPath   string
	DashboardPath string
	SignInPath    string
	NavHome       string
	NavPricing    string
	NavDashboard  string
	NavSignIn     string
	Plans         []planView
}

type planView struct {
	Name  string
	Price string
}

// plans is the static product catalogue, priced in USD. Display prices are
// converted with the locale's static currency table.
var plans = []struct {
	Name     string
	USDMonth float64
}{
	{Name: "Starter", USDMonth: 29},
	{Name: "Growth", USDMonth: 79},
	{Name: "Scale", USDMonth: 199},
}

func newShellData(locale i18n.Locale, titleKey string) shellData {
	dir := "ltr"
	if locale == i18n.LocaleAR {
		dir = "rtl"
	}
	return shellData{
		Lang:          string(locale),
		Dir:           dir,
		Title:         i18n.T(locale, titleKey),
		HomePath:      i18n.PathFor(locale, "/"),
		PricingPath:   i18n.PathFor(locale, "/pricing"),
		DashboardPath: i18n.PathFor(locale, "/dashboard"),
		SignInPath:    i18n.PathFor(locale, "/signin"),
		NavHome:       i18n.T(locale, "nav.home"),
		NavPricing:    i18n.T(locale, "nav.pricing"),
		NavDashboard:  i18n.T(locale, "nav.dashboard"),
		NavSignIn:     i18n.T(locale, "nav.signin"),
	}
}

func (h *Handler) renderShell(w http.ResponseWriter, status int, data shellData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := shellTemplate.Execute(w, data); err != nil {
		h.logger.Error("shell render failed", "error", err)
	}
}

// pageHome renders the localized home page. On the unprefixed root it first
// negotiates the Accept-Language header: visitors whose best match is a
// non-default locale are redirected to that locale's home once, so deep
// links always win over negotiation.
func (h *Handler) pageHome(locale i18n.Locale) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if locale == i18n.DefaultLocale && r.URL.Path == "/" {
			if matched := i18n.Match(r.Header.Get("Accept-Language")); matched != i18n.DefaultLocale {
				http.Redirect(w, r, i18n.PathFor(matched, "/"), http.StatusFound)
				return
			}
		}
		h.renderShell(w, http.StatusOK, newShellData(locale, "page.home"))
	}
}

// pagePricing renders the pricing page with locale-currency display prices.
func (h *Handler) pagePricing(locale i18n.Locale) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency := i18n.CurrencyFor(locale)
		data := newShellData(locale, "page.pricing")
		for _, plan := range plans {
			data.Plans = append(data.Plans, planView{
				Name:  plan.Name,
				Price: fmt.Sprintf("%s%.0f %s", currency.Symbol, plan.USDMonth*currency.RateVsUSD, currency.Code),
			})
		}
		h.renderShell(w, http.StatusOK, data)
	}
}

// pageStatic renders a plain shell page for the given title key.
func (h *Handler) pageStatic(locale i18n.Locale, titleKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderShell(w, http.StatusOK, newShellData(locale, titleKey))
	}
}

// pageDashboard gates the dashboard shell behind a session.
func (h *Handler) pageDashboard(locale i18n.Locale) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, i18n.PathFor(locale, "/signin"), http.StatusFound)
			return
		}
		h.renderShell(w, http.StatusOK, newShellData(locale, "page.dashboard"))
	}
}

// pageLaunchpad is the post-login entry point: it resolves the account
// status and redirects to sign-in, onboarding, trial, or the dashboard.
// The status fetch completes (or fail-defaults) before any rule runs.
func (h *Handler) pageLaunchpad(locale i18n.Locale) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())
		destination, path := h.entry.Resolve(r.Context(), session, locale)
		h.logger.Info("post-auth routing decision", "destination", destination, "path", path)
		http.Redirect(w, r, path, http.StatusFound)
	}
}

// handleNotFound renders the not-found page. Unknown routes and unsupported
// locale prefixes both land here. A path under a supported locale keeps
// that locale's chrome; anything else, including an unsupported locale
// segment, falls back to the default locale's dictionary.
func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	locale, _, _ := i18n.Split(r.URL.Path)
	data := newShellData(locale, "notfound.title")
	data.Body = i18n.T(locale, "notfound.body")
	h.renderShell(w, http.StatusNotFound, data)
}
