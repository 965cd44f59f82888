// Package normalize canonicalizes free-text place names into stable join
// keys. Every join in the pipeline goes through Key, so two spellings
// that differ only in case, accents, or surrounding whitespace land on
// the same row.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFKD and drops combining marks, turning
// "São Paulo" into "Sao Paulo". NFC recomposition keeps any remaining
// multi-rune sequences in their conventional form.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Key returns the normalized join key for a raw place name: accents
// stripped, surrounding whitespace trimmed, lowercased. It is pure and
// idempotent. An empty or all-whitespace input yields the empty key,
// which group-bys and joins treat as unjoinable.
//
// Malformed input is handled best-effort: if the transform fails, the
// raw text passes through with only trim and lowercase applied.
func Key(raw string) string {
	stripped, _, err := transform.String(stripMarks, raw)
	if err != nil {
		stripped = raw
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// Keys maps Key over a list of raw names, dropping entries that
// normalize to the empty key and duplicates. The result is a set
// suitable for membership tests against normalized keys.
func Keys(raws []string) map[string]bool {
	set := make(map[string]bool, len(raws))
	for _, raw := range raws {
		if k := Key(raw); k != "" {
			set[k] = true
		}
	}
	return set
}
