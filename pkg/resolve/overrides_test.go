package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesBuiltins(t *testing.T) {
	o, err := NewOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, len(defaultOverrides), o.Len())

	res, ok := o.Lookup("Activities/Super Adventure Box/World 1/route.json")
	require.True(t, ok)
	assert.Equal(t, 895, res.ID)
	assert.Equal(t, SourceOverride, res.Source)
	assert.True(t, res.Confident)
}

func TestOverridesExtra(t *testing.T) {
	o, err := NewOverrides(map[string]int{"*Southsun Survival*": 1058})
	require.NoError(t, err)

	res, ok := o.Lookup("Minigames/Southsun Survival/lap.json")
	require.True(t, ok)
	assert.Equal(t, 1058, res.ID)
}

func TestOverridesExtraReplacesBuiltin(t *testing.T) {
	o, err := NewOverrides(map[string]int{"*Dragon Bash*": 1234})
	require.NoError(t, err)

	res, ok := o.Lookup("Festivals/Dragon Bash/moa race.json")
	require.True(t, ok)
	assert.Equal(t, 1234, res.ID)
}

func TestOverridesNoMatch(t *testing.T) {
	o, err := NewOverrides(nil)
	require.NoError(t, err)

	_, ok := o.Lookup("Maps/Core Tyria/Lions Arch/route.json")
	assert.False(t, ok)
}

func TestOverridesNilReceiver(t *testing.T) {
	var o *Overrides
	_, ok := o.Lookup("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, o.Len())
}

func TestOverridesInvalidPattern(t *testing.T) {
	_, err := NewOverrides(map[string]int{"([unclosed": 1})
	assert.Error(t, err)
}
