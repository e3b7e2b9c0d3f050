package matcher

import (
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		patternType PatternType
		wantErr     bool
	}{
		{
			name:        "valid glob pattern",
			pattern:     "*Super Adventure Box*",
			patternType: Glob,
			wantErr:     false,
		},
		{
			name:        "valid regex pattern",
			pattern:     "^Activities/.*",
			patternType: Regex,
			wantErr:     false,
		},
		{
			name:        "invalid regex pattern",
			pattern:     "[unclosed",
			patternType: Regex,
			wantErr:     true,
		},
		{
			name:        "auto detect glob",
			pattern:     "*Labyrinth*",
			patternType: Auto,
			wantErr:     false,
		},
		{
			name:        "auto detect regex",
			pattern:     "^Festivals/\\w+$",
			patternType: Auto,
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.patternType, tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && m == nil {
				t.Error("New() returned nil matcher without error")
			}
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		patternType PatternType
		input       string
		want        bool
	}{
		{
			name:        "glob matches path segment",
			pattern:     "*Super Adventure Box*",
			patternType: Glob,
			input:       "Activities/Super Adventure Box/World 1/route.json",
			want:        true,
		},
		{
			name:        "glob is case insensitive",
			pattern:     "*dragon bash*",
			patternType: Glob,
			input:       "Festivals/DRAGON BASH/moa race.json",
			want:        true,
		},
		{
			name:        "glob no match",
			pattern:     "*Labyrinth*",
			patternType: Glob,
			input:       "Maps/Core Tyria/Lions Arch/route.json",
			want:        false,
		},
		{
			name:        "glob matches whole single segment path",
			pattern:     "route*",
			patternType: Glob,
			input:       "route 7.json",
			want:        true,
		},
		{
			name:        "regex matches across separators",
			pattern:     "^Festivals/.*race",
			patternType: Regex,
			input:       "Festivals/Dragon Bash/moa race.json",
			want:        true,
		},
		{
			name:        "regex is case insensitive",
			pattern:     "^festivals/",
			patternType: Regex,
			input:       "Festivals/Wintersday/gift run.json",
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.patternType, tt.pattern)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := m.Match(tt.input); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectPatternType(t *testing.T) {
	if got := detectPatternType("*glob*"); got != Glob {
		t.Errorf("detectPatternType(*glob*) = %v, want Glob", got)
	}
	if got := detectPatternType("^anchored$"); got != Regex {
		t.Errorf("detectPatternType(^anchored$) = %v, want Regex", got)
	}
}
