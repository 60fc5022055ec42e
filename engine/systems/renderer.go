package systems

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// Uniform names expected by the shader program.
const (
	uniformModel         = "model"
	uniformView          = "view"
	uniformProjection    = "projection"
	uniformViewPosition  = "viewPosition"
	uniformObjectColor   = "objectColor"
	uniformObjectTexture = "objectTexture"
	uniformUseTexture    = "bUseTexture"
	uniformUseLighting   = "bUseLighting"
	uniformUVScale       = "UVscale"
)

// RendererSystem owns the draw-state bundle and translates it into named
// uniform writes against the backend. Callers set transform, appearance and
// material immediately before each DrawMesh call; the draw consumes whatever
// the bundle currently holds. Every state push no-ops safely when no backend
// is attached.
type RendererSystem struct {
	backend renderer.RendererBackend
	state   *resources.RenderState

	textureSystem  *TextureSystem
	materialSystem *MaterialSystem

	// application
	AppName   string
	AppWidth  uint32
	AppHeight uint32
}

func NewRendererSystem(appName string, appWidth, appHeight uint32, backend renderer.RendererBackend) (*RendererSystem, error) {
	return &RendererSystem{
		backend:   backend,
		state:     resources.NewRenderState(),
		AppName:   appName,
		AppWidth:  appWidth,
		AppHeight: appHeight,
	}, nil
}

// AttachRegistries wires the tag registries used to resolve texture and
// material tags. Called once by the system manager after construction.
func (r *RendererSystem) AttachRegistries(ts *TextureSystem, ms *MaterialSystem) {
	r.textureSystem = ts
	r.materialSystem = ms
}

func (r *RendererSystem) Initialize() error {
	if r.backend == nil {
		core.LogWarn("renderer system initialized without a backend, state pushes will be recorded only")
		return nil
	}
	return r.backend.Initialize(r.AppName, r.AppWidth, r.AppHeight)
}

func (r *RendererSystem) Shutdown() error {
	if r.backend == nil {
		return nil
	}
	return r.backend.Shutdown()
}

func (r *RendererSystem) BeginFrame(deltaTime float64) error {
	if r.backend == nil {
		return nil
	}
	return r.backend.BeginFrame(deltaTime)
}

func (r *RendererSystem) EndFrame(deltaTime float64) error {
	if r.backend == nil {
		return nil
	}
	return r.backend.EndFrame(deltaTime)
}

func (r *RendererSystem) OnResized(width, height uint16) {
	if r.backend != nil {
		r.backend.Resized(width, height)
	}
}

// State returns a copy of the current draw-state bundle.
func (r *RendererSystem) State() resources.RenderState {
	return *r.state
}

// SetTransform stores the model matrix for the next draw.
func (r *RendererSystem) SetTransform(model math.Mat4) {
	r.state.Model = model
	if r.backend != nil {
		r.backend.SetUniformMat4(uniformModel, model)
	}
}

// SetFlatColor switches the next draw to untextured rendering with the
// given RGBA color.
func (r *RendererSystem) SetFlatColor(red, green, blue, alpha float32) {
	r.state.Color = math.NewVec4(red, green, blue, alpha)
	r.state.UseTexture = false
	if r.backend != nil {
		r.backend.SetUniformBool(uniformUseTexture, false)
		r.backend.SetUniformVec4(uniformObjectColor, r.state.Color)
	}
}

// SetTexture switches the next draw to textured rendering using the slot
// registered under tag. When the tag is unknown the previously bound slot
// stays in effect and ErrTextureNotFound is returned; the caller decides
// whether to skip the object or keep drawing.
func (r *RendererSystem) SetTexture(tag string) error {
	r.state.UseTexture = true
	if r.backend != nil {
		r.backend.SetUniformBool(uniformUseTexture, true)
	}

	if r.textureSystem == nil {
		return fmt.Errorf("no texture registry attached: %w", core.ErrTextureNotFound)
	}
	slot := r.textureSystem.Slot(tag)
	if slot == resources.SlotNotFound {
		return fmt.Errorf("texture '%s': %w", tag, core.ErrTextureNotFound)
	}

	r.state.TextureSlot = slot
	if r.backend != nil {
		r.backend.SetUniformInt(uniformObjectTexture, int32(slot))
	}
	return nil
}

// SetTextureScale sets the UV tiling factors for the next textured draw.
func (r *RendererSystem) SetTextureScale(u, v float32) {
	r.state.UVScale = math.NewVec2(u, v)
	if r.backend != nil {
		r.backend.SetUniformVec2(uniformUVScale, r.state.UVScale)
	}
}

// SetMaterial pushes the shading parameters registered under tag. When the
// tag is unknown no state is pushed, the previous material stays bound and
// ErrMaterialNotFound is returned.
func (r *RendererSystem) SetMaterial(tag string) error {
	if r.materialSystem == nil {
		return fmt.Errorf("no material registry attached: %w", core.ErrMaterialNotFound)
	}
	material, found := r.materialSystem.Acquire(tag)
	if !found {
		return fmt.Errorf("material '%s': %w", tag, core.ErrMaterialNotFound)
	}

	r.state.Material = material
	r.state.HasMaterial = true
	if r.backend != nil {
		r.backend.SetUniformVec3("material.ambientColor", material.AmbientColor)
		r.backend.SetUniformFloat("material.ambientStrength", material.AmbientStrength)
		r.backend.SetUniformVec3("material.diffuseColor", material.DiffuseColor)
		r.backend.SetUniformVec3("material.specularColor", material.SpecularColor)
		r.backend.SetUniformFloat("material.shininess", material.Shininess)
	}
	return nil
}

// SetLight pushes one static light descriptor to the fixed shader array.
func (r *RendererSystem) SetLight(index int, light resources.LightSource) error {
	if index < 0 || index >= resources.MaxLightSources {
		return core.ErrTooManyLights
	}
	if r.backend == nil {
		return nil
	}
	prefix := fmt.Sprintf("lightSources[%d]", index)
	r.backend.SetUniformVec3(prefix+".position", light.Position)
	r.backend.SetUniformVec3(prefix+".ambientColor", light.AmbientColor)
	r.backend.SetUniformVec3(prefix+".diffuseColor", light.DiffuseColor)
	r.backend.SetUniformVec3(prefix+".specularColor", light.SpecularColor)
	r.backend.SetUniformFloat(prefix+".focalStrength", light.FocalStrength)
	r.backend.SetUniformFloat(prefix+".specularIntensity", light.SpecularIntensity)
	return nil
}

// EnableLighting tells the shading stage to run the lighting path. Without
// it objects render with their flat color or texture only.
func (r *RendererSystem) EnableLighting() {
	if r.backend != nil {
		r.backend.SetUniformBool(uniformUseLighting, true)
	}
}

// SetViewProjection pushes the camera matrices and eye position.
func (r *RendererSystem) SetViewProjection(view, projection math.Mat4, viewPosition math.Vec3) {
	if r.backend == nil {
		return
	}
	r.backend.SetUniformMat4(uniformView, view)
	r.backend.SetUniformMat4(uniformProjection, projection)
	r.backend.SetUniformVec3(uniformViewPosition, viewPosition)
}

// TextureCreate uploads pixels for the given texture through the backend.
func (r *RendererSystem) TextureCreate(pixels []uint8, texture *resources.Texture) error {
	if r.backend == nil {
		return nil
	}
	return r.backend.TextureCreate(pixels, texture)
}

func (r *RendererSystem) TextureDestroy(texture *resources.Texture) {
	if r.backend != nil {
		r.backend.TextureDestroy(texture)
	}
}

func (r *RendererSystem) TextureBindUnit(unit uint32, texture *resources.Texture) {
	if r.backend != nil {
		r.backend.TextureBindUnit(unit, texture)
	}
}

func (r *RendererSystem) MeshCreate(config *resources.GeometryConfig, mesh *resources.Mesh) error {
	if r.backend == nil {
		return nil
	}
	return r.backend.MeshCreate(config, mesh)
}

func (r *RendererSystem) MeshDestroy(mesh *resources.Mesh) {
	if r.backend != nil {
		r.backend.MeshDestroy(mesh)
	}
}

// MeshDraw issues the draw for the given mesh against the current
// draw-state bundle.
func (r *RendererSystem) MeshDraw(mesh *resources.Mesh) {
	if r.backend != nil {
		r.backend.MeshDraw(mesh)
	}
}
