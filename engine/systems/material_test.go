package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

func TestMaterialSystemDefineAndAcquire(t *testing.T) {
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 8})
	require.NoError(t, err)

	ms.Define(resources.Material{
		Tag:             "wood",
		AmbientColor:    math.NewVec3(0.2, 0.2, 0.2),
		AmbientStrength: 1.0,
		DiffuseColor:    math.NewVec3(0.4, 0.4, 0.4),
		SpecularColor:   math.NewVec3(0.2, 0.2, 0.2),
		Shininess:       1,
	})

	m, found := ms.Acquire("wood")
	require.True(t, found)
	assert.Equal(t, float32(1.0), m.AmbientStrength)
	assert.Equal(t, float32(1), m.Shininess)

	_, found = ms.Acquire("glass")
	assert.False(t, found)
}

func TestMaterialSystemDuplicateTagFirstDefinitionWins(t *testing.T) {
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 8})
	require.NoError(t, err)

	ms.Define(resources.Material{Tag: "metal", Shininess: 10})
	ms.Define(resources.Material{Tag: "metal", Shininess: 99})

	assert.Equal(t, 2, ms.Count())
	m, found := ms.Acquire("metal")
	require.True(t, found)
	assert.Equal(t, float32(10), m.Shininess)
}

func TestMaterialSystemDropsBeyondCapacity(t *testing.T) {
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 1})
	require.NoError(t, err)

	ms.Define(resources.Material{Tag: "one"})
	ms.Define(resources.Material{Tag: "two"})

	assert.Equal(t, 1, ms.Count())
	_, found := ms.Acquire("two")
	assert.False(t, found)
}
