package resolve

import (
	"sort"

	"github.com/tyriatrails/routelint/internal/matcher"
)

// Override binds a path pattern to a fixed map identifier. Records stored
// under non-map special sections (minigames, story instances) carry folder
// names that never appear in the reference list, so name-based resolution
// cannot place them.
type Override struct {
	Pattern string
	ID      int

	m *matcher.Matcher
}

// Overrides is an ordered table of mode defaults. When enabled, the first
// matching pattern wins over any name-based resolution.
type Overrides struct {
	rules []Override
}

// defaultOverrides covers the special sections shipped with the route
// collection itself.
var defaultOverrides = map[string]int{
	"*Super Adventure Box*":  895,  // SAB hub instance
	"*Dragon Bash*":          50,   // festival games run in Lion's Arch
	"*Mad King's Labyrinth*": 922,  // Halloween labyrinth instance
	"*Winter Wonderland*":    1316, // Wintersday jumping puzzle instance
}

// NewOverrides compiles the built-in mode defaults together with extra
// pattern->id pairs from configuration. Patterns are glob by default;
// regex patterns are detected automatically.
func NewOverrides(extra map[string]int) (*Overrides, error) {
	merged := make(map[string]int, len(defaultOverrides)+len(extra))
	for pattern, id := range defaultOverrides {
		merged[pattern] = id
	}
	for pattern, id := range extra {
		merged[pattern] = id
	}

	patterns := make([]string, 0, len(merged))
	for pattern := range merged {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns) // deterministic precedence

	o := &Overrides{}
	for _, pattern := range patterns {
		m, err := matcher.New(matcher.Auto, pattern)
		if err != nil {
			return nil, err
		}
		o.rules = append(o.rules, Override{Pattern: pattern, ID: merged[pattern], m: m})
	}
	return o, nil
}

// Lookup returns the fixed identifier for the record path, if any pattern
// matches. The path should be the record's storage path relative to the
// scan root.
func (o *Overrides) Lookup(path string) (IDResolution, bool) {
	if o == nil {
		return IDResolution{}, false
	}
	for _, rule := range o.rules {
		if rule.m.Match(path) {
			return IDResolution{
				ID:         rule.ID,
				Source:     SourceOverride,
				Confident:  true,
				Candidates: []int{rule.ID},
			}, true
		}
	}
	return IDResolution{}, false
}

// Len returns the number of compiled override rules.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.rules)
}
