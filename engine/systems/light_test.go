package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

func newLightFixture(t *testing.T) (*LightSystem, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	rs, err := NewRendererSystem("test", 800, 600, backend)
	require.NoError(t, err)
	ls, err := NewLightSystem(rs)
	require.NoError(t, err)
	return ls, backend
}

func TestLightSystemApplyPushesIndexedLights(t *testing.T) {
	ls, backend := newLightFixture(t)

	require.NoError(t, ls.Add(resources.LightSource{Position: math.NewVec3(0, 5, 0), FocalStrength: 1}))
	require.NoError(t, ls.Add(resources.LightSource{Position: math.NewVec3(0, 5, 0), SpecularIntensity: 1}))
	require.NoError(t, ls.Apply())

	assert.Equal(t, math.NewVec3(0, 5, 0), backend.vec3s["lightSources[0].position"])
	assert.Equal(t, float32(1), backend.floats["lightSources[0].focalStrength"])
	assert.Equal(t, float32(1), backend.floats["lightSources[1].specularIntensity"])
	assert.True(t, backend.bools["bUseLighting"])
}

func TestLightSystemRejectsMoreThanMax(t *testing.T) {
	ls, _ := newLightFixture(t)

	for i := 0; i < resources.MaxLightSources; i++ {
		require.NoError(t, ls.Add(resources.LightSource{}))
	}
	err := ls.Add(resources.LightSource{})
	assert.ErrorIs(t, err, core.ErrTooManyLights)
	assert.Equal(t, resources.MaxLightSources, ls.Count())
}

func TestLightSystemNoLightsKeepsLightingOff(t *testing.T) {
	ls, backend := newLightFixture(t)

	require.NoError(t, ls.Apply())
	assert.False(t, backend.bools["bUseLighting"])
}
