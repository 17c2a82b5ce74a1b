package domain

import "strings"

// NormalizeStem prepares a raw wordlist entry for use as a stem:
//   - trims surrounding whitespace and lowercases
//   - drops every rune outside [a-z], space, hyphen and underscore
//   - collapses space/hyphen runs into a single underscore
//   - strips leading/trailing underscores
//
// "Fire-Fly " becomes "fire_fly"; an entry with no usable runes becomes "".
func NormalizeStem(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	pendingSep := false
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
