package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", "", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: "  "}

	err := f.Format(&buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"count": 3`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}

	err := f.Format(&buf, map[string]string{"category": "near-typo"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "category: near-typo")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, Data{
		Headers: []string{"category", "count"},
		Rows:    [][]string{{"duplicate", "2"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "duplicate")
	assert.Contains(t, out, "2")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, map[string]bool{"strict": true})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), `"strict": true`))
}
