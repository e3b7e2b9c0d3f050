package mapref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and trim",
			input: "  Lions Arch  ",
			want:  "lions arch",
		},
		{
			name:  "apostrophe stripped",
			input: "Lion's Arch",
			want:  "lions arch",
		},
		{
			name:  "curly apostrophe stripped",
			input: "Lion’s Arch",
			want:  "lions arch",
		},
		{
			name:  "punctuation collapses to single space",
			input: "Domain---of_Vabbi!!",
			want:  "domain of vabbi",
		},
		{
			name:  "digits preserved",
			input: "Sector 17",
			want:  "sector 17",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "-- !! --",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Lion's Arch", "LIONS ARCH", "  A--B  ", "Grottos", ""}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", input)
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	assert.Equal(t, Normalize("Lion's Arch"), Normalize("LIONS ARCH"))
	assert.Equal(t, Normalize("Lion’s Arch"), Normalize("lions-arch"))
}

func TestExactKey(t *testing.T) {
	assert.Equal(t, "lion's arch", ExactKey("Lion's Arch"))
	assert.Equal(t, "lion's arch", ExactKey("Lion’s Arch"), "curly apostrophe folds to ASCII")
	assert.Equal(t, "lions arch", ExactKey("Lions Arch"))
	assert.NotEqual(t, ExactKey("Lions Arch"), ExactKey("Lion's Arch"))
}

func TestNearPluralKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Grottos", "grotto"},
		{"Grotto", "grotto"},
		{"Caves of the Lost", "cave of the lost"},
		{"Boss", "bos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NearPluralKey(tt.input), "input %q", tt.input)
	}
}

func TestPluralNeighbors(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"single token plural drift", "grottos", "grotto", true},
		{"identical strings never flagged", "grotto", "grotto", false},
		{"multi token one drifts", "crystal caves", "crystal cave", true},
		{"different words", "grotto", "grove", false},
		{"token count mismatch", "the grotto", "grotto", false},
		{"non-suffix difference", "grottos", "grattos", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PluralNeighbors(tt.a, tt.b))
		})
	}
}

func TestStripPossessive(t *testing.T) {
	assert.Equal(t, "Melandru", StripPossessive("Melandru's"))
	assert.Equal(t, "Lion's Arch", StripPossessive("Lion's Arch"), "possessive must be trailing")
	assert.Equal(t, "Arch", StripPossessive("Arch"))
	assert.Equal(t, "s", StripPossessive("s"))
}

func TestStripApostrophes(t *testing.T) {
	assert.Equal(t, "Lions Arch", StripApostrophes("Lion's Arch"))
	assert.Equal(t, "Lions Arch", StripApostrophes("Lion’s Arch"))
	assert.Equal(t, "plain", StripApostrophes("plain"))
}
