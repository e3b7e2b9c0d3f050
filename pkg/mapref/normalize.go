// Package mapref loads the canonical map reference list and builds the
// lookup tables used to match folder and file names against it. Names are
// compared through normalized keys so that case, punctuation, apostrophe
// and singular/plural drift never hide a match.
package mapref

import (
	"strings"
)

// apostrophes are the characters treated as apostrophe variants.
// U+2019 shows up in folder names pasted from in-game text.
const apostrophes = "'’ʼ"

// Normalize canonicalizes free text into a comparable key: lowercase,
// apostrophes stripped, every other non-alphanumeric collapsed to a single
// space, trimmed. It is total and idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true // leading separators are dropped

	for _, r := range s {
		if strings.ContainsRune(apostrophes, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// ExactKey is like Normalize but keeps apostrophes (folded to ASCII '),
// so that "Lions Arch" and "Lion's Arch" produce distinct keys. The exact
// lookup table is keyed by ExactKey; the near-match tables by Normalize.
func ExactKey(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true

	for _, r := range s {
		if strings.ContainsRune(apostrophes, r) {
			b.WriteByte('\'')
			prevSpace = false
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// NearPluralKey returns the normalized key with a trailing "s" stripped from
// each whitespace-separated token. Two names sharing a NearPluralKey differ
// at most by singular/plural drift on individual tokens.
func NearPluralKey(s string) string {
	tokens := strings.Split(Normalize(s), " ")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSuffix(tok, "s")
	}
	return strings.Join(tokens, " ")
}

// StripApostrophes removes apostrophe characters without touching anything
// else. Used to compare a segment against a canonical name's spelling.
func StripApostrophes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(apostrophes, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripPossessive removes a trailing possessive "'s" (any apostrophe
// variant) from the name, returning the name unchanged when absent.
func StripPossessive(s string) string {
	if len(s) < 2 {
		return s
	}
	last := s[len(s)-1]
	if last != 's' && last != 'S' {
		return s
	}
	rest := s[:len(s)-1]
	for _, a := range []string{"'", "’", "ʼ"} {
		if strings.HasSuffix(rest, a) {
			return strings.TrimSuffix(rest, a)
		}
	}
	return s
}

// PluralNeighbors reports whether two normalized keys differ only by a
// trailing "s" on individual tokens, with at least one token differing.
// Identical strings are never near-plural neighbors.
func PluralNeighbors(a, b string) bool {
	at := strings.Split(a, " ")
	bt := strings.Split(b, " ")
	if len(at) != len(bt) {
		return false
	}

	differs := false
	for i := range at {
		if at[i] == bt[i] {
			continue
		}
		if strings.TrimSuffix(at[i], "s") != strings.TrimSuffix(bt[i], "s") {
			return false
		}
		differs = true
	}
	return differs
}
