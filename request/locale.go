package request

import (
	"strings"

	"golang.org/x/exp/slog"
)

// ResolveLocale reproduces the Java locale parser's quirk exactly
// (original_source/RoutingResource.java#buildRequest): splitting
// "en_US_POSIX" on "_" and then using only the first component for
// every branch of the length switch, 1 through 3. An empty spec is
// treated as "en", and a spec with more than three parts falls back to
// "en".
// This is preserved deliberately — spec.md §9 flags it as a kept quirk,
// not a bug to fix.
func ResolveLocale(localeSpec string) string {
	if localeSpec == "" {
		localeSpec = "en"
	}
	parts := strings.Split(localeSpec, "_")
	switch len(parts) {
	case 1, 2, 3:
		return parts[0]
	default:
		slog.Debug("bogus locale, defaulting to en", "locale", localeSpec)
		return "en"
	}
}
