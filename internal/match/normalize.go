package match

import "strings"

// identSuffixes are dropped by NormalizeIdentWithSuffixStrip, longest first.
var identSuffixes = []string{"timestamp", "ids", "utc", "id", "at"}

// NormalizeIdent lowercases s and drops '_', '-' and ' ', so "OneTime",
// "one_time" and "ONE-TIME" all become "onetime".
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, strings.ToLower(s))
}

// NormalizeIdentWithSuffixStrip is NormalizeIdent without one trailing
// suffix such as "id" or "at". A name that is only the suffix is kept.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	for _, suffix := range identSuffixes {
		if trimmed, ok := strings.CutSuffix(normalized, suffix); ok && trimmed != "" {
			return trimmed
		}
	}

	return normalized
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
