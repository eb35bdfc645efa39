/**
 * @description
 * Locale resolution for incoming request paths. The resolver decides which
 * locale a path belongs to, builds locale-prefixed paths for redirects, and
 * negotiates a locale from an Accept-Language header. The locale table in
 * locales.go is the single source of truth: the same enumeration drives
 * route registration and path validation.
 */
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Split resolves the locale of a request path. If the leading segment is a
// supported locale, it returns that locale, the remainder of the path, and
// explicit=true. Otherwise the default locale is implied (as-needed
// prefixing) and the path is returned untouched with explicit=false.
func Split(path string) (locale Locale, rest string, explicit bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, remainder, _ := strings.Cut(trimmed, "/")
	if IsSupported(seg) {
		rest = "/" + remainder
		if remainder == "" {
			rest = "/"
		}
		return Locale(seg), rest, true
	}
	if path == "" {
		path = "/"
	}
	return DefaultLocale, path, false
}

// PathFor prefixes path with the locale segment. The default locale carries
// no prefix, so PathFor(DefaultLocale, "/dashboard") is just "/dashboard".
func PathFor(locale Locale, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if locale == DefaultLocale {
		return path
	}
	if path == "/" {
		return "/" + string(locale)
	}
	return "/" + string(locale) + path
}

// Match negotiates the best supported locale for an Accept-Language header.
// An empty or unparseable header yields the default locale.
func Match(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return supported[index]
}
