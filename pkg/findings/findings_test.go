package findings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingString(t *testing.T) {
	f := Finding{
		Severity:   SeverityWarning,
		Category:   CategoryNearTypo,
		Path:       "Maps/Lions Arch/route.json",
		Message:    "folder name is an apostrophe variant",
		Suggestion: "Lions Arch -> Lion's Arch",
	}
	s := f.String()
	assert.Contains(t, s, "[warning]")
	assert.Contains(t, s, "near-typo")
	assert.Contains(t, s, "Maps/Lions Arch/route.json")
	assert.Contains(t, s, "Lions Arch -> Lion's Arch")
}

func TestSeverityJSON(t *testing.T) {
	raw, err := json.Marshal(Finding{Severity: SeverityError, Category: CategorySchema, Message: "m"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"severity":"error"`)
}

func TestReportCounts(t *testing.T) {
	r := NewReport()
	r.Addf(SeverityError, CategoryMalformed, "a.json", "bad json")
	r.Addf(SeverityWarning, CategoryUnknownArea, "b.json", "unknown")
	r.Addf(SeverityWarning, CategoryUnknownArea, "c.json", "unknown")
	r.Addf(SeverityInfo, CategoryMissingMapID, "d.json", "missing")

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 1, r.CountBySeverity(SeverityError))
	assert.Equal(t, 2, r.CountBySeverity(SeverityWarning))
	assert.Equal(t, 1, r.CountBySeverity(SeverityInfo))
}

func TestReportSummarySorted(t *testing.T) {
	r := NewReport()
	r.Addf(SeverityWarning, CategoryUnknownArea, "b.json", "unknown")
	r.Addf(SeverityError, CategoryMalformed, "a.json", "bad")
	r.Addf(SeverityWarning, CategoryUnknownArea, "c.json", "unknown")

	summary := r.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, CategoryMalformed, summary[0].Category)
	assert.Equal(t, CategoryUnknownArea, summary[1].Category)
	assert.Equal(t, 2, summary[1].Count)
	assert.Equal(t, SeverityWarning, summary[1].Severity)
}

func TestReportExitPolicy(t *testing.T) {
	clean := NewReport()
	assert.False(t, clean.Failed(false))
	assert.False(t, clean.Failed(true))

	warned := NewReport()
	warned.Addf(SeverityWarning, CategoryDuplicate, "a.json", "dup")
	assert.False(t, warned.Failed(false), "warnings alone never fail a default run")
	assert.True(t, warned.Failed(true), "strict mode promotes warnings")

	failed := NewReport()
	failed.Addf(SeverityError, CategorySchema, "a.json", "bad")
	assert.True(t, failed.HasErrors())
	assert.True(t, failed.Failed(false))
}
