// Package resolve turns a record's storage path into a single canonical map
// entity and then into a concrete map identifier. Path resolution scores
// three match kinds per segment; identifier resolution applies the
// sibling-folder heuristic and mode-default overrides.
package resolve

import (
	"strings"

	"github.com/tyriatrails/routelint/pkg/mapref"
)

// MatchKind classifies how a path segment matched a canonical name.
type MatchKind int

const (
	// MatchExact means the segment is the canonical spelling up to case
	// and punctuation.
	MatchExact MatchKind = iota
	// MatchApostrophe means the segment is the canonical name with
	// apostrophes or a trailing possessive stripped.
	MatchApostrophe
	// MatchPlural means the segment differs from the canonical name only
	// by trailing "s" drift on individual tokens.
	MatchPlural
)

// Scores per match kind. Exact always beats a near match; apostrophe drift
// is considered more reliable than plural drift.
const (
	scoreExact      = 100
	scoreApostrophe = 80
	scorePlural     = 70
)

// String returns the human-readable name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchApostrophe:
		return "apostrophe-near"
	case MatchPlural:
		return "plural-near"
	default:
		return "unknown"
	}
}

// Score returns the score contributed by this match kind.
func (k MatchKind) Score() int {
	switch k {
	case MatchExact:
		return scoreExact
	case MatchApostrophe:
		return scoreApostrophe
	case MatchPlural:
		return scorePlural
	default:
		return 0
	}
}

// Match is the resolved outcome for a record's location. CanonicalName is
// guaranteed to exist in the index that produced the match.
type Match struct {
	CanonicalName string
	Kind          MatchKind
	Segment       string // the raw segment text that matched, prefix stripped
	Depth         int    // 0 is the shallowest segment
	Score         int
}

// StripOrderPrefix removes a leading numeric ordering prefix such as "01 "
// or "12. " from a path segment.
func StripOrderPrefix(segment string) string {
	i := 0
	for i < len(segment) && segment[i] >= '0' && segment[i] <= '9' {
		i++
	}
	if i == 0 {
		return segment
	}
	rest := segment[i:]
	rest = strings.TrimPrefix(rest, ".")
	if rest == "" || (rest[0] != ' ' && rest[0] != '-' && rest[0] != '_') {
		return segment
	}
	return strings.TrimLeft(rest, " -_")
}

// Path finds the best-matching canonical entity for an ordered sequence of
// path segments, shallowest first, excluding the record's own file name.
// On equal score the deeper segment wins: nested map folders are more
// specific than parent scope folders. The second return is false when no
// segment matched any table, which signals "unknown area" rather than an
// error.
func Path(idx *mapref.Index, segments []string) (Match, bool) {
	var best Match
	found := false

	for depth, raw := range segments {
		segment := StripOrderPrefix(raw)
		if segment == "" {
			continue
		}

		m, ok := matchSegment(idx, segment)
		if !ok {
			continue
		}
		m.Depth = depth

		if !found || m.Score >= best.Score {
			best = m
			found = true
		}
	}

	return best, found
}

// matchSegment evaluates the three match kinds for one segment in priority
// order and returns the first that applies.
func matchSegment(idx *mapref.Index, segment string) (Match, bool) {
	if name, ok := idx.Exact(mapref.ExactKey(segment)); ok {
		return Match{
			CanonicalName: name,
			Kind:          MatchExact,
			Segment:       segment,
			Score:         scoreExact,
		}, true
	}

	normalized := mapref.Normalize(segment)

	for _, name := range idx.ApostropheVariants(normalized) {
		if !apostropheVariantValid(segment, name) {
			continue
		}
		return Match{
			CanonicalName: name,
			Kind:          MatchApostrophe,
			Segment:       segment,
			Score:         scoreApostrophe,
		}, true
	}

	pluralKey := mapref.NearPluralKey(segment)
	for _, name := range idx.NearPlural(pluralKey) {
		if !mapref.PluralNeighbors(normalized, mapref.Normalize(name)) {
			continue
		}
		return Match{
			CanonicalName: name,
			Kind:          MatchPlural,
			Segment:       segment,
			Score:         scorePlural,
		}, true
	}

	return Match{}, false
}

// apostropheVariantValid confirms the segment text equals the canonical name
// with apostrophes or trailing possessive stripped, case-insensitively, and
// is not simply the canonical spelling itself.
func apostropheVariantValid(segment, canonical string) bool {
	if strings.EqualFold(segment, canonical) {
		return false
	}
	if strings.EqualFold(segment, mapref.StripApostrophes(canonical)) {
		return true
	}
	if poss := mapref.StripPossessive(canonical); poss != canonical && strings.EqualFold(segment, poss) {
		return true
	}
	return false
}
