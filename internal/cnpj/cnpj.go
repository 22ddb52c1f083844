package cnpj

import "strings"

// Normalize strips everything but digits from a user-supplied fund
// registration code, so "00.000.000/0000-00" and "00000000000000" identify
// the same fund. Idempotent by construction.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
