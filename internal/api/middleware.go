/**
 * @description
 * Edge middleware for the web shell: host canonicalization and the static
 * security header set. Both run before any routing, so downstream handlers
 * never observe the apex-host form of a request and every response carries
 * the same headers.
 *
 * @dependencies
 * - net/http: Standard Go library.
 */

package api

import (
	"net"
	"net/http"
	"strings"
)

// securityHeaders is the fixed header set attached to every response.
// Values are static configuration; nothing here is computed per request.
var securityHeaders = map[string]string{
	"Content-Security-Policy":   "default-src 'self'; img-src 'self' data: https:; script-src 'self'; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'",
	"Strict-Transport-Security": "max-age=63072000; includeSubDomains; preload",
	"X-Frame-Options":           "DENY",
	"X-Content-Type-Options":    "nosniff",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Cache-Control":             "no-store",
}

// SecurityHeaders attaches the static security header set to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range securityHeaders {
			w.Header().Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}

// CanonicalHost creates a middleware that permanently redirects requests for
// the bare apex domain to the canonical www host, preserving path and query.
// It runs before any routing so no downstream component ever sees the
// apex-host form.
func CanonicalHost(apexDomain, canonicalHost string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apexDomain != "" && hostMatches(r.Host, apexDomain) {
				target := "https://" + canonicalHost + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusPermanentRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// hostMatches compares a request Host header (which may carry a port)
// against a configured domain.
func hostMatches(requestHost, domain string) bool {
	host := requestHost
	if h, _, err := net.SplitHostPort(requestHost); err == nil {
		host = h
	}
	return strings.EqualFold(host, domain)
}
