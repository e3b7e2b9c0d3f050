package resolve

import (
	"sort"
)

// IDSource records which rule picked the identifier.
type IDSource int

const (
	// SourceSingle means only one candidate identifier existed.
	SourceSingle IDSource = iota
	// SourceSibling means sibling records in the same folder narrowed the
	// candidates to one.
	SourceSibling
	// SourceFallback means the lowest candidate was chosen deterministically
	// because no other rule applied. Confidence is low.
	SourceFallback
	// SourceOverride means a mode-default path pattern fixed the identifier.
	SourceOverride
)

// String returns the human-readable name of the id source.
func (s IDSource) String() string {
	switch s {
	case SourceSingle:
		return "single"
	case SourceSibling:
		return "sibling"
	case SourceFallback:
		return "fallback"
	case SourceOverride:
		return "override"
	default:
		return "unknown"
	}
}

// IDResolution is the outcome of picking one identifier from a candidate
// set. Confident is false only for the lowest-id fallback.
type IDResolution struct {
	ID        int
	Source    IDSource
	Confident bool
	// Candidates holds the full sorted candidate set, kept for reporting.
	Candidates []int
}

// ID picks exactly one identifier from candidates (must be non-empty).
// Precedence: a single candidate wins outright; otherwise a unique
// intersection with the identifiers already observed among sibling records
// in the same folder wins, since one folder is assumed to hold one concrete
// instance of an ambiguous map; otherwise the lowest candidate is chosen
// deterministically and flagged as low confidence.
func ID(candidates []int, siblings map[int]bool) (IDResolution, bool) {
	if len(candidates) == 0 {
		return IDResolution{}, false
	}

	sorted := make([]int, len(candidates))
	copy(sorted, candidates)
	sort.Ints(sorted)

	if len(sorted) == 1 {
		return IDResolution{
			ID:         sorted[0],
			Source:     SourceSingle,
			Confident:  true,
			Candidates: sorted,
		}, true
	}

	var overlap []int
	for _, id := range sorted {
		if siblings[id] {
			overlap = append(overlap, id)
		}
	}
	if len(overlap) == 1 {
		return IDResolution{
			ID:         overlap[0],
			Source:     SourceSibling,
			Confident:  true,
			Candidates: sorted,
		}, true
	}

	return IDResolution{
		ID:         sorted[0],
		Source:     SourceFallback,
		Confident:  false,
		Candidates: sorted,
	}, true
}
