package systems

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/assets"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

func newRendererFixture(t *testing.T) (*RendererSystem, *TextureSystem, *MaterialSystem, *fakeBackend, string) {
	t.Helper()
	dir := t.TempDir()
	am, err := assets.NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir))

	backend := newFakeBackend()
	rs, err := NewRendererSystem("test", 800, 600, backend)
	require.NoError(t, err)
	ts, err := NewTextureSystem(&TextureSystemConfig{MaxTextureCount: 16}, am, rs)
	require.NoError(t, err)
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 8})
	require.NoError(t, err)
	rs.AttachRegistries(ts, ms)
	return rs, ts, ms, backend, dir
}

func TestRendererSystemInitialStateIsFrameInitial(t *testing.T) {
	rs, _, _, _, _ := newRendererFixture(t)

	state := rs.State()
	assert.Equal(t, math.NewMat4Identity(), state.Model)
	assert.Equal(t, math.NewVec4(1, 1, 1, 1), state.Color)
	assert.False(t, state.UseTexture)
	assert.Equal(t, resources.SlotNotFound, state.TextureSlot)
	assert.Equal(t, math.NewVec2One(), state.UVScale)
	assert.False(t, state.HasMaterial)
}

func TestRendererSystemSetTransformPushesModelUniform(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	model := math.NewMat4Model(
		math.NewVec3(10, 1, 6),
		math.NewVec3Zero(),
		math.NewVec3(0, 0, 0),
	)
	rs.SetTransform(model)

	assert.Equal(t, model, rs.State().Model)
	assert.Equal(t, model, backend.mat4s["model"])
}

func TestRendererSystemSetFlatColorDisablesTexturing(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	rs.SetFlatColor(0.5, 0.25, 0.1, 1)

	state := rs.State()
	assert.False(t, state.UseTexture)
	assert.Equal(t, math.NewVec4(0.5, 0.25, 0.1, 1), state.Color)
	assert.False(t, backend.bools["bUseTexture"])
	assert.Equal(t, math.NewVec4(0.5, 0.25, 0.1, 1), backend.vec4s["objectColor"])
}

func TestRendererSystemSetTextureResolvesSlot(t *testing.T) {
	rs, ts, _, backend, dir := newRendererFixture(t)
	require.NoError(t, ts.Load(writeColorPNG(t, dir, "a.png"), "desk"))
	require.NoError(t, ts.Load(writeColorPNG(t, dir, "b.png"), "wall"))

	require.NoError(t, rs.SetTexture("wall"))

	state := rs.State()
	assert.True(t, state.UseTexture)
	assert.Equal(t, 1, state.TextureSlot)
	assert.True(t, backend.bools["bUseTexture"])
	assert.Equal(t, int32(1), backend.ints["objectTexture"])
}

func TestRendererSystemUnknownTextureKeepsPreviousSlot(t *testing.T) {
	rs, ts, _, backend, dir := newRendererFixture(t)
	require.NoError(t, ts.Load(writeColorPNG(t, dir, "a.png"), "desk"))
	require.NoError(t, rs.SetTexture("desk"))

	err := rs.SetTexture("missing")
	require.ErrorIs(t, err, core.ErrTextureNotFound)

	state := rs.State()
	// Texturing is on, but the previously resolved slot is still bound.
	assert.True(t, state.UseTexture)
	assert.Equal(t, 0, state.TextureSlot)
	assert.Equal(t, int32(0), backend.ints["objectTexture"])
}

func TestRendererSystemSetTextureScale(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	rs.SetTextureScale(4, 2)

	assert.Equal(t, math.NewVec2(4, 2), rs.State().UVScale)
	assert.Equal(t, math.NewVec2(4, 2), backend.vec2s["UVscale"])
}

func TestRendererSystemSetMaterialPushesAllParameters(t *testing.T) {
	rs, _, ms, backend, _ := newRendererFixture(t)
	ms.Define(resources.Material{
		Tag:             "shiny",
		AmbientColor:    math.NewVec3(0.1, 0.1, 0.1),
		AmbientStrength: 1.0,
		DiffuseColor:    math.NewVec3(0.4, 0.4, 0.4),
		SpecularColor:   math.NewVec3(0.8, 0.8, 0.8),
		Shininess:       10,
	})

	require.NoError(t, rs.SetMaterial("shiny"))

	assert.True(t, rs.State().HasMaterial)
	assert.Equal(t, math.NewVec3(0.1, 0.1, 0.1), backend.vec3s["material.ambientColor"])
	assert.Equal(t, float32(1.0), backend.floats["material.ambientStrength"])
	assert.Equal(t, math.NewVec3(0.4, 0.4, 0.4), backend.vec3s["material.diffuseColor"])
	assert.Equal(t, math.NewVec3(0.8, 0.8, 0.8), backend.vec3s["material.specularColor"])
	assert.Equal(t, float32(10), backend.floats["material.shininess"])
}

func TestRendererSystemUnknownMaterialPushesNothing(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	err := rs.SetMaterial("missing")
	require.ErrorIs(t, err, core.ErrMaterialNotFound)

	assert.False(t, rs.State().HasMaterial)
	_, pushed := backend.floats["material.shininess"]
	assert.False(t, pushed)
}

func TestRendererSystemSetLightIndexedUniforms(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	light := resources.LightSource{
		Position:          math.NewVec3(0, 5, 0),
		AmbientColor:      math.NewVec3(0.1, 0.1, 0.1),
		DiffuseColor:      math.NewVec3(0.2, 0.2, 0.2),
		SpecularColor:     math.NewVec3(0.2, 0.2, 0.2),
		FocalStrength:     1,
		SpecularIntensity: 1,
	}
	require.NoError(t, rs.SetLight(1, light))

	assert.Equal(t, math.NewVec3(0, 5, 0), backend.vec3s["lightSources[1].position"])
	assert.Equal(t, float32(1), backend.floats["lightSources[1].focalStrength"])

	err := rs.SetLight(resources.MaxLightSources, light)
	assert.ErrorIs(t, err, core.ErrTooManyLights)
}

func TestRendererSystemViewProjection(t *testing.T) {
	rs, _, _, backend, _ := newRendererFixture(t)

	view := math.NewMat4LookAt(math.NewVec3(0, 5, 12), math.NewVec3(0, 2.5, 0), math.NewVec3Up())
	projection := math.NewMat4Perspective(math.DegToRad(80), 4.0/3.0, 0.1, 100)
	rs.SetViewProjection(view, projection, math.NewVec3(0, 5, 12))

	assert.Equal(t, view, backend.mat4s["view"])
	assert.Equal(t, projection, backend.mat4s["projection"])
	assert.Equal(t, math.NewVec3(0, 5, 12), backend.vec3s["viewPosition"])
}

func TestRendererSystemNilBackendIsSafe(t *testing.T) {
	rs, err := NewRendererSystem("test", 800, 600, nil)
	require.NoError(t, err)

	require.NoError(t, rs.Initialize())
	rs.SetTransform(math.NewMat4Identity())
	rs.SetFlatColor(1, 0, 0, 1)
	rs.SetTextureScale(2, 2)
	rs.EnableLighting()
	rs.SetViewProjection(math.NewMat4Identity(), math.NewMat4Identity(), math.NewVec3Zero())
	rs.MeshDraw(&resources.Mesh{Kind: resources.MeshKindBox})
	require.NoError(t, rs.BeginFrame(0))
	require.NoError(t, rs.EndFrame(0))
	require.NoError(t, rs.Shutdown())

	// State is still tracked even without a backend.
	assert.Equal(t, math.NewVec4(1, 0, 0, 1), rs.State().Color)
	assert.Equal(t, math.NewVec2(2, 2), rs.State().UVScale)
}

func TestRendererSystemSetTextureWithoutRegistry(t *testing.T) {
	rs, err := NewRendererSystem("test", 800, 600, newFakeBackend())
	require.NoError(t, err)

	assert.ErrorIs(t, rs.SetTexture("any"), core.ErrTextureNotFound)
	assert.ErrorIs(t, rs.SetMaterial("any"), core.ErrMaterialNotFound)
}

func TestRendererSystemTexturePathHelper(t *testing.T) {
	// Sanity check the asset-root resolution used by scene setup.
	dir := t.TempDir()
	am, err := assets.NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir))
	assert.Equal(t, filepath.Join(dir, "textures", "desk.jpg"), am.TexturePath("desk.jpg"))
}
