package systems

import (
	"errors"

	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// fakeBackend records every call so tests can assert on the uniform and
// draw traffic without a GPU context.
type fakeBackend struct {
	initialized bool
	shutdown    bool

	mat4s  map[string]math.Mat4
	vec2s  map[string]math.Vec2
	vec3s  map[string]math.Vec3
	vec4s  map[string]math.Vec4
	floats map[string]float32
	ints   map[string]int32
	bools  map[string]bool

	textureCreates   int
	textureDestroys  int
	boundUnits       map[uint32]string
	failTextureCreate bool

	meshCreates  int
	meshDestroys int
	drawnKinds   []resources.MeshKind
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		mat4s:      make(map[string]math.Mat4),
		vec2s:      make(map[string]math.Vec2),
		vec3s:      make(map[string]math.Vec3),
		vec4s:      make(map[string]math.Vec4),
		floats:     make(map[string]float32),
		ints:       make(map[string]int32),
		bools:      make(map[string]bool),
		boundUnits: make(map[uint32]string),
	}
}

func (f *fakeBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	f.initialized = true
	return nil
}

func (f *fakeBackend) Shutdown() error {
	f.shutdown = true
	return nil
}

func (f *fakeBackend) Resized(width, height uint16) {}

func (f *fakeBackend) BeginFrame(deltaTime float64) error { return nil }

func (f *fakeBackend) EndFrame(deltaTime float64) error { return nil }

func (f *fakeBackend) TextureCreate(pixels []uint8, texture *resources.Texture) error {
	if f.failTextureCreate {
		return errors.New("texture upload rejected")
	}
	f.textureCreates++
	texture.InternalData = struct{}{}
	return nil
}

func (f *fakeBackend) TextureDestroy(texture *resources.Texture) {
	f.textureDestroys++
	texture.InternalData = nil
}

func (f *fakeBackend) TextureBindUnit(unit uint32, texture *resources.Texture) {
	f.boundUnits[unit] = texture.Tag
}

func (f *fakeBackend) MeshCreate(config *resources.GeometryConfig, mesh *resources.Mesh) error {
	f.meshCreates++
	mesh.IndexCount = uint32(len(config.Indices))
	mesh.InternalData = struct{}{}
	return nil
}

func (f *fakeBackend) MeshDestroy(mesh *resources.Mesh) {
	f.meshDestroys++
	mesh.InternalData = nil
}

func (f *fakeBackend) MeshDraw(mesh *resources.Mesh) {
	f.drawnKinds = append(f.drawnKinds, mesh.Kind)
}

func (f *fakeBackend) SetUniformMat4(name string, value math.Mat4) { f.mat4s[name] = value }

func (f *fakeBackend) SetUniformVec2(name string, value math.Vec2) { f.vec2s[name] = value }

func (f *fakeBackend) SetUniformVec3(name string, value math.Vec3) { f.vec3s[name] = value }

func (f *fakeBackend) SetUniformVec4(name string, value math.Vec4) { f.vec4s[name] = value }

func (f *fakeBackend) SetUniformFloat(name string, value float32) { f.floats[name] = value }

func (f *fakeBackend) SetUniformInt(name string, value int32) { f.ints[name] = value }

func (f *fakeBackend) SetUniformBool(name string, value bool) { f.bools[name] = value }
