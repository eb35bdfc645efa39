/**
 * @description
 * This file defines the locale table for the Levqor web shell: the fixed
 * set of supported locales, the default locale, and the per-locale
 * currency table used by the pricing pages. All of it is built once at
 * process start and never mutated afterwards; request handlers share it
 * read-only.
 */
package i18n

import "golang.org/x/text/language"

// Locale is a language/region code governing which translation dictionary
// and path prefix apply to a request.
type Locale string

// The supported locale set. Prefixing is "as-needed": the default locale
// carries no path prefix, every other locale is a single leading segment.
const (
	LocaleEN     Locale = "en"
	LocaleES     Locale = "es"
	LocaleAR     Locale = "ar"
	LocaleHI     Locale = "hi"
	LocaleZHHans Locale = "zh-Hans"
	LocaleDE     Locale = "de"
	LocaleFR     Locale = "fr"
	LocaleIT     Locale = "it"
	LocalePT     Locale = "pt"
)

// DefaultLocale is the locale used when a path carries no locale prefix.
const DefaultLocale = LocaleEN

var supported = []Locale{
	LocaleEN, LocaleES, LocaleAR, LocaleHI, LocaleZHHans,
	LocaleDE, LocaleFR, LocaleIT, LocalePT,
}

var supportedSet = func() map[Locale]struct{} {
	set := make(map[Locale]struct{}, len(supported))
	for _, loc := range supported {
		set[loc] = struct{}{}
	}
	return set
}()

// matcher negotiates an Accept-Language header against the supported set.
// The first tag is the default and wins on a tie.
var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, loc := range supported {
		tags = append(tags, language.MustParse(string(loc)))
	}
	return language.NewMatcher(tags)
}()

// Supported returns the supported locale set in registration order.
// Callers must not modify the returned slice.
func Supported() []Locale {
	return supported
}

// IsSupported reports whether code is a member of the supported set.
// Matching is exact: locale codes are canonical, not case-folded.
func IsSupported(code string) bool {
	_, ok := supportedSet[Locale(code)]
	return ok
}

// Currency describes how prices are displayed for a locale. Rates are
// static configuration, not live FX data.
type Currency struct {
	Code      string
	Symbol    string
	RateVsUSD float64
}

var currencies = map[Locale]Currency{
	LocaleEN:     {Code: "USD", Symbol: "$", RateVsUSD: 1.0},
	LocaleES:     {Code: "EUR", Symbol: "€", RateVsUSD: 0.92},
	LocaleAR:     {Code: "AED", Symbol: "د.إ", RateVsUSD: 3.67},
	LocaleHI:     {Code: "INR", Symbol: "₹", RateVsUSD: 83.0},
	LocaleZHHans: {Code: "CNY", Symbol: "¥", RateVsUSD: 7.2},
	LocaleDE:     {Code: "EUR", Symbol: "€", RateVsUSD: 0.92},
	LocaleFR:     {Code: "EUR", Symbol: "€", RateVsUSD: 0.92},
	LocaleIT:     {Code: "EUR", Symbol: "€", RateVsUSD: 0.92},
	LocalePT:     {Code: "EUR", Symbol: "€", RateVsUSD: 0.92},
}

// CurrencyFor returns the display currency for a locale, falling back to
// the default locale's currency for anything unknown.
func CurrencyFor(locale Locale) Currency {
	if c, ok := currencies[locale]; ok {
		return c
	}
	return currencies[DefaultLocale]
}
