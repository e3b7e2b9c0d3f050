// Package findings aggregates scan results into categorized, counted
// output. Every per-record problem becomes a finding; the batch always
// completes, and the exit policy is derived from the collected severities.
package findings

import (
	"fmt"
	"sort"
)

// Severity classifies how serious a finding is.
type Severity int

const (
	// SeverityInfo is advisory output.
	SeverityInfo Severity = iota
	// SeverityWarning is a problem that does not fail the run by default.
	SeverityWarning
	// SeverityError fails the run.
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Category identifies what kind of problem a finding describes.
type Category string

// Finding categories, matching the error taxonomy of the scanner.
const (
	CategoryMalformed     Category = "malformed"
	CategorySchema        Category = "schema"
	CategoryUnknownArea   Category = "unknown-area"
	CategoryNearTypo      Category = "near-typo"
	CategoryAmbiguous     Category = "ambiguous"
	CategoryDuplicate     Category = "duplicate"
	CategoryReference     Category = "reference"
	CategoryMissingMapID  Category = "missing-map-id"
	CategoryMapIDMismatch Category = "map-id-mismatch"
	CategoryEmpty         Category = "empty"
	CategoryRepair        Category = "repair"
)

// Finding is one categorized message about one record (or about the
// reference list itself, with an empty path).
type Finding struct {
	Severity   Severity `json:"severity"`
	Category   Category `json:"category"`
	Path       string   `json:"path,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// String renders the finding as a single report line.
func (f Finding) String() string {
	s := fmt.Sprintf("[%s] %s", f.Severity, f.Category)
	if f.Path != "" {
		s += " " + f.Path
	}
	s += ": " + f.Message
	if f.Suggestion != "" {
		s += " (suggest: " + f.Suggestion + ")"
	}
	return s
}

// Report collects findings in scan order.
type Report struct {
	findings []Finding
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a finding.
func (r *Report) Add(f Finding) {
	r.findings = append(r.findings, f)
}

// Addf appends a finding with a formatted message.
func (r *Report) Addf(sev Severity, cat Category, path, format string, args ...any) {
	r.Add(Finding{
		Severity: sev,
		Category: cat,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Findings returns all findings in the order they were added.
func (r *Report) Findings() []Finding {
	return r.findings
}

// Len returns the number of findings.
func (r *Report) Len() int {
	return len(r.findings)
}

// CountBySeverity returns the number of findings at the given severity.
func (r *Report) CountBySeverity(sev Severity) int {
	n := 0
	for _, f := range r.findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// CategoryCount is one row of the terminal summary.
type CategoryCount struct {
	Category Category
	Severity Severity // highest severity seen in the category
	Count    int
}

// Summary returns per-category counts sorted by category name.
func (r *Report) Summary() []CategoryCount {
	counts := make(map[Category]*CategoryCount)
	for _, f := range r.findings {
		c, ok := counts[f.Category]
		if !ok {
			c = &CategoryCount{Category: f.Category}
			counts[f.Category] = c
		}
		c.Count++
		if f.Severity > c.Severity {
			c.Severity = f.Severity
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// HasErrors reports whether any error-severity finding exists.
func (r *Report) HasErrors() bool {
	return r.CountBySeverity(SeverityError) > 0
}

// Failed reports whether the run should exit non-zero. Warnings fail the
// run only in strict mode.
func (r *Report) Failed(strict bool) bool {
	if r.HasErrors() {
		return true
	}
	return strict && r.CountBySeverity(SeverityWarning) > 0
}
