package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/assets"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
	"github.com/spaghettifunk/tableau/engine/systems"
)

// recordingBackend captures uniform and draw traffic for assertions.
type recordingBackend struct {
	mat4s  map[string]math.Mat4
	vec3s  map[string]math.Vec3
	vec4s  map[string]math.Vec4
	floats map[string]float32
	ints   map[string]int32
	bools  map[string]bool

	boundUnits map[uint32]string
	drawn      []resources.MeshKind
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{
		mat4s:      make(map[string]math.Mat4),
		vec3s:      make(map[string]math.Vec3),
		vec4s:      make(map[string]math.Vec4),
		floats:     make(map[string]float32),
		ints:       make(map[string]int32),
		bools:      make(map[string]bool),
		boundUnits: make(map[uint32]string),
	}
}

func (b *recordingBackend) Initialize(appName string, appWidth, appHeight uint32) error { return nil }
func (b *recordingBackend) Shutdown() error                                            { return nil }
func (b *recordingBackend) Resized(width, height uint16)                               {}
func (b *recordingBackend) BeginFrame(deltaTime float64) error                         { return nil }
func (b *recordingBackend) EndFrame(deltaTime float64) error                           { return nil }

func (b *recordingBackend) TextureCreate(pixels []uint8, texture *resources.Texture) error {
	texture.InternalData = struct{}{}
	return nil
}
func (b *recordingBackend) TextureDestroy(texture *resources.Texture) { texture.InternalData = nil }
func (b *recordingBackend) TextureBindUnit(unit uint32, texture *resources.Texture) {
	b.boundUnits[unit] = texture.Tag
}

func (b *recordingBackend) MeshCreate(config *resources.GeometryConfig, mesh *resources.Mesh) error {
	mesh.IndexCount = uint32(len(config.Indices))
	mesh.InternalData = struct{}{}
	return nil
}
func (b *recordingBackend) MeshDestroy(mesh *resources.Mesh) { mesh.InternalData = nil }
func (b *recordingBackend) MeshDraw(mesh *resources.Mesh)    { b.drawn = append(b.drawn, mesh.Kind) }

func (b *recordingBackend) SetUniformMat4(name string, value math.Mat4) { b.mat4s[name] = value }
func (b *recordingBackend) SetUniformVec2(name string, value math.Vec2) {}
func (b *recordingBackend) SetUniformVec3(name string, value math.Vec3) { b.vec3s[name] = value }
func (b *recordingBackend) SetUniformVec4(name string, value math.Vec4) { b.vec4s[name] = value }
func (b *recordingBackend) SetUniformFloat(name string, value float32)  { b.floats[name] = value }
func (b *recordingBackend) SetUniformInt(name string, value int32)      { b.ints[name] = value }
func (b *recordingBackend) SetUniformBool(name string, value bool)      { b.bools[name] = value }

// writeSceneTextures materializes every texture file the composition
// expects under <root>/textures. PNG-encoded content behind a .jpg name is
// fine, the decoder sniffs the format from the bytes.
func writeSceneTextures(t *testing.T, root string) {
	t.Helper()
	dir := filepath.Join(root, "textures")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, asset := range deskTextures() {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		f, err := os.Create(filepath.Join(dir, asset.File))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}
}

func newSceneFixture(t *testing.T, withTextures bool) (*Scene, *recordingBackend) {
	t.Helper()
	root := t.TempDir()
	if withTextures {
		writeSceneTextures(t, root)
	}
	am, err := assets.NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(root))

	backend := newRecordingBackend()
	sm, err := systems.NewSystemManager("test", 800, 600, backend, am)
	require.NoError(t, err)
	return New(sm), backend
}

func TestScenePrepareLoadsEverything(t *testing.T) {
	s, backend := newSceneFixture(t, true)

	require.NoError(t, s.Prepare())

	// Five textures in registration order, bound to matching units.
	assert.Equal(t, "keyboard", backend.boundUnits[0])
	assert.Equal(t, "mousepad", backend.boundUnits[1])
	assert.Equal(t, "desk", backend.boundUnits[2])
	assert.Equal(t, "monitor", backend.boundUnits[3])
	assert.Equal(t, "wall", backend.boundUnits[4])

	// Both overhead lights pushed, lighting on.
	assert.Equal(t, math.NewVec3(0, 5, 0), backend.vec3s["lightSources[0].position"])
	assert.Equal(t, math.NewVec3(0, 5, 0), backend.vec3s["lightSources[1].position"])
	assert.True(t, backend.bools["bUseLighting"])
}

func TestSceneRenderDrawsFullComposition(t *testing.T) {
	s, backend := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())

	require.NoError(t, s.Render())

	assert.Len(t, backend.drawn, len(s.Objects()))
	// Draw order follows the declaration order.
	assert.Equal(t, resources.MeshKindPlane, backend.drawn[0])
	assert.Equal(t, resources.MeshKindPlane, backend.drawn[1])
	assert.Equal(t, resources.MeshKindCylinder, backend.drawn[2])
	assert.Equal(t, resources.MeshKindBox, backend.drawn[len(backend.drawn)-1])

	// The camera was applied for the frame.
	assert.Contains(t, backend.mat4s, "view")
	assert.Contains(t, backend.mat4s, "projection")

	// The last draw is the black mousepad, untextured.
	assert.False(t, backend.bools["bUseTexture"])
	assert.Equal(t, math.NewVec4(0, 0, 0, 1), backend.vec4s["objectColor"])
}

func TestSceneRenderSurvivesMissingTextures(t *testing.T) {
	s, backend := newSceneFixture(t, false)

	// All texture loads fail, preparation still succeeds.
	require.NoError(t, s.Prepare())
	require.NoError(t, s.Render())

	// Every object still draws; textured ones fall back without a slot.
	assert.Len(t, backend.drawn, len(s.Objects()))
}

func TestSceneRenderRequiresPrepare(t *testing.T) {
	s, backend := newSceneFixture(t, true)

	assert.Error(t, s.Render())
	assert.Empty(t, backend.drawn)
}

func TestSceneObjectTransformsMatchComposition(t *testing.T) {
	s, backend := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())
	require.NoError(t, s.Render())

	// The model uniform holds the last object's transform: the mousepad,
	// scaled (10, 0.05, 5) at (0, 0, 2).
	model := backend.mat4s["model"]
	origin := model.MulVec3(math.NewVec3Zero())
	assert.InDelta(t, 0, origin.X, 1e-5)
	assert.InDelta(t, 0, origin.Y, 1e-5)
	assert.InDelta(t, 2, origin.Z, 1e-5)

	corner := model.MulVec3(math.NewVec3(1, 0, 0))
	assert.InDelta(t, 10, corner.X, 1e-5)
}

func TestSceneShutdownReleasesResources(t *testing.T) {
	s, backend := newSceneFixture(t, true)
	require.NoError(t, s.Prepare())

	s.Shutdown()

	assert.Error(t, s.Render())
	assert.Empty(t, backend.drawn)
}
