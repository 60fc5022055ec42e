package renderer

import (
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// RendererBackend is the narrow surface the scene-state pipeline talks to.
// Implementations own the GPU context; everything above this interface is
// GPU-agnostic and testable without one.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16)
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error

	// TextureCreate uploads pixels as a 2D texture with repeat wrapping,
	// linear filtering and generated mipmaps, storing the backend handle
	// in texture.InternalData.
	TextureCreate(pixels []uint8, texture *resources.Texture) error
	TextureDestroy(texture *resources.Texture)
	// TextureBindUnit binds the texture to the given texture unit.
	TextureBindUnit(unit uint32, texture *resources.Texture)

	MeshCreate(config *resources.GeometryConfig, mesh *resources.Mesh) error
	MeshDestroy(mesh *resources.Mesh)
	MeshDraw(mesh *resources.Mesh)

	// Named uniform writes against the active shader program.
	SetUniformMat4(name string, value math.Mat4)
	SetUniformVec2(name string, value math.Vec2)
	SetUniformVec3(name string, value math.Vec3)
	SetUniformVec4(name string, value math.Vec4)
	SetUniformFloat(name string, value float32)
	SetUniformInt(name string, value int32)
	SetUniformBool(name string, value bool)
}
