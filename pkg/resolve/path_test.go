package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyriatrails/routelint/pkg/mapref"
)

func testIndex() *mapref.Index {
	return mapref.NewIndex([]mapref.Reference{
		{Name: "Lion's Arch", ID: 50},
		{Name: "Grotto", ID: 831},
		{Name: "Crystal Oasis", ID: 1210},
		{Name: "Melandru's", ID: 77},
	})
}

func TestStripOrderPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"01 Core Tyria", "Core Tyria"},
		{"12. Crystal Oasis", "Crystal Oasis"},
		{"3-Grotto", "Grotto"},
		{"Grotto", "Grotto"},
		{"007", "007"},
		{"50 Shades", "Shades"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripOrderPrefix(tt.input), "input %q", tt.input)
	}
}

func TestPathExactMatch(t *testing.T) {
	idx := testIndex()

	m, ok := Path(idx, []string{"Maps", "01 Core Tyria", "Lion's Arch"})
	require.True(t, ok)
	assert.Equal(t, "Lion's Arch", m.CanonicalName)
	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, 100, m.Score)
	assert.Equal(t, 2, m.Depth)
}

func TestPathApostropheNear(t *testing.T) {
	idx := testIndex()

	m, ok := Path(idx, []string{"Maps", "01 Core Tyria", "Lions Arch"})
	require.True(t, ok)
	assert.Equal(t, "Lion's Arch", m.CanonicalName)
	assert.Equal(t, MatchApostrophe, m.Kind)
	assert.Equal(t, 80, m.Score)
	assert.Equal(t, "Lions Arch", m.Segment)
}

func TestPathPossessiveNear(t *testing.T) {
	idx := testIndex()

	// "Melandru" is "Melandru's" with the trailing possessive stripped.
	m, ok := Path(idx, []string{"Melandru"})
	require.True(t, ok)
	assert.Equal(t, "Melandru's", m.CanonicalName)
	assert.Equal(t, MatchApostrophe, m.Kind)
}

func TestPathPluralNear(t *testing.T) {
	idx := testIndex()

	m, ok := Path(idx, []string{"Grottos"})
	require.True(t, ok)
	assert.Equal(t, "Grotto", m.CanonicalName)
	assert.Equal(t, MatchPlural, m.Kind)
	assert.Equal(t, 70, m.Score)
}

func TestPathExactNeverReportedAsPlural(t *testing.T) {
	idx := testIndex()

	m, ok := Path(idx, []string{"Grotto"})
	require.True(t, ok)
	assert.Equal(t, MatchExact, m.Kind)
}

func TestPathDeeperSegmentWinsTies(t *testing.T) {
	idx := testIndex()

	// Two exact matches at different depths: the deeper one is more specific.
	m, ok := Path(idx, []string{"Crystal Oasis", "Grotto"})
	require.True(t, ok)
	assert.Equal(t, "Grotto", m.CanonicalName)
	assert.Equal(t, 1, m.Depth)
}

func TestPathHigherScoreBeatsDepth(t *testing.T) {
	idx := testIndex()

	// A shallow exact match outranks a deeper near match.
	m, ok := Path(idx, []string{"Crystal Oasis", "Grottos"})
	require.True(t, ok)
	assert.Equal(t, "Crystal Oasis", m.CanonicalName)
	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, 0, m.Depth)
}

func TestPathNoMatch(t *testing.T) {
	idx := testIndex()

	_, ok := Path(idx, []string{"Maps", "Unknown Region", "Nowhere"})
	assert.False(t, ok)
}

func TestPathEmptySegments(t *testing.T) {
	idx := testIndex()

	_, ok := Path(idx, nil)
	assert.False(t, ok)
}

func TestApostropheVariantValid(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		canonical string
		want      bool
	}{
		{"apostrophes stripped", "Lions Arch", "Lion's Arch", true},
		{"case insensitive", "lions arch", "Lion's Arch", true},
		{"canonical spelling is not a variant", "Lion's Arch", "Lion's Arch", false},
		{"hyphenated form fails literal comparison", "Lions-Arch", "Lion's Arch", false},
		{"possessive stripped", "Melandru", "Melandru's", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apostropheVariantValid(tt.segment, tt.canonical))
		})
	}
}
