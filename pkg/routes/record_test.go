package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyriatrails/routelint/pkg/errors"
)

const validRecord = `{
  "Name": "Harbor Sweep",
  "StartGameMapId": 50,
  "Coordinates": [
    {"X": 1.5, "Y": 2.0, "Z": -3.25},
    {"X": 4.0, "Y": 5.0, "Z": 6.0}
  ]
}`

func TestDecodeValid(t *testing.T) {
	rec, err := Decode([]byte(validRecord), "route.json")
	require.NoError(t, err)

	assert.Equal(t, "Harbor Sweep", rec.Name)
	require.NotNil(t, rec.StartGameMapID)
	assert.Equal(t, 50, *rec.StartGameMapID)
	require.Len(t, rec.Coordinates, 2)
	assert.Equal(t, Coordinate{X: 1.5, Y: 2.0, Z: -3.25}, rec.Coordinates[0])
	assert.Equal(t, "route.json", rec.Path)
}

func TestDecodeWithoutMapID(t *testing.T) {
	rec, err := Decode([]byte(`{"Name":"n","Coordinates":[]}`), "r.json")
	require.NoError(t, err)
	assert.Nil(t, rec.StartGameMapID)
	assert.Empty(t, rec.Coordinates)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sentinel error
	}{
		{
			name:     "malformed json",
			raw:      `{"Name": "x", `,
			sentinel: errors.ErrMalformed,
		},
		{
			name:     "missing name",
			raw:      `{"Coordinates":[]}`,
			sentinel: errors.ErrInvalidInput,
		},
		{
			name:     "empty name",
			raw:      `{"Name":"","Coordinates":[]}`,
			sentinel: errors.ErrInvalidInput,
		},
		{
			name:     "missing coordinates",
			raw:      `{"Name":"x"}`,
			sentinel: errors.ErrInvalidInput,
		},
		{
			name:     "point missing axis",
			raw:      `{"Name":"x","Coordinates":[{"X":1,"Y":2}]}`,
			sentinel: errors.ErrInvalidInput,
		},
		{
			name:     "non-numeric axis",
			raw:      `{"Name":"x","Coordinates":[{"X":"a","Y":2,"Z":3}]}`,
			sentinel: errors.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw), "r.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Contains(t, err.Error(), "r.json")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "route.json")
	require.NoError(t, os.WriteFile(path, []byte(validRecord), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Sweep", rec.Name)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
}
