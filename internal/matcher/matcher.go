// Package matcher provides pattern matching for record paths using glob and
// regex patterns. Mode-default overrides use it to recognize the special
// sections (minigames, story instances) whose map id is fixed regardless of
// folder name.
package matcher

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto attempts to detect the pattern type.
	Auto
)

// Matcher matches record paths against a single compiled pattern.
type Matcher struct {
	pattern     string
	patternType PatternType
	compiled    *regexp.Regexp
	globPattern string
}

// New creates a new Matcher with the specified pattern and type. Matching is
// always case-insensitive: folder names come from a case-preserving but
// case-careless filesystem culture.
func New(patternType PatternType, pattern string) (*Matcher, error) {
	m := &Matcher{
		pattern:     pattern,
		patternType: patternType,
	}

	if patternType == Auto {
		m.patternType = detectPatternType(pattern)
	}

	switch m.patternType {
	case Glob:
		m.globPattern = strings.ToLower(pattern)
		if _, err := filepath.Match(m.globPattern, ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	case Regex:
		p := pattern
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		compiled, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.compiled = compiled
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", m.patternType)
	}

	return m, nil
}

// Match checks if the input matches the pattern. Glob patterns match
// against the whole slash-normalized path and against each path segment, so
// "Activities*" recognizes any record stored under an Activities folder.
func (m *Matcher) Match(input string) bool {
	switch m.patternType {
	case Glob:
		lower := strings.ToLower(filepath.ToSlash(input))
		if matched, _ := filepath.Match(m.globPattern, lower); matched {
			return true
		}
		for _, segment := range strings.Split(lower, "/") {
			if matched, _ := filepath.Match(m.globPattern, segment); matched {
				return true
			}
		}
		return false
	case Regex:
		return m.compiled.MatchString(filepath.ToSlash(input))
	default:
		return false
	}
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *Matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType attempts to detect if a pattern is glob or regex.
func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s",
		"(?:", "(?i)", "{", "}", "+", "|", "(", ")",
	}
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}
