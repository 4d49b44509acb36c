// Package normalize defines the canonical form used for every name, title
// and genre comparison in the catalog. Two strings that canonicalize to the
// same value refer to the same entity.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonicalize returns the canonical key for s: NFC-normalized, trimmed of
// surrounding whitespace and lowercased. Stored canonical keys and lookup
// arguments must both go through this function.
func Canonicalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// CanonicalizeAll canonicalizes every element of ss, dropping entries that
// canonicalize to the empty string and later duplicates of an earlier entry.
// Order of first occurrence is preserved.
func CanonicalizeAll(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		c := Canonicalize(s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Equal reports whether a and b are the same under canonicalization.
func Equal(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}
