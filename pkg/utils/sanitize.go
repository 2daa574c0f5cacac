package utils

import "strings"

// SanitizeIATA upper-cases s and keeps only letters A-Z.
func SanitizeIATA(s string) string {
	return keep(strings.ToUpper(s), func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

// SanitizeFlightNumber upper-cases s and keeps only A-Z and 0-9.
func SanitizeFlightNumber(s string) string {
	return keep(strings.ToUpper(s), func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	})
}

func keep(s string, allowed func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
