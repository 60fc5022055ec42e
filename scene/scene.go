package scene

import (
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/systems"
)

// Scene directs the desk still life. Prepare loads every asset once;
// Render replays the fixed composition each frame. A missing texture or
// material degrades that one object, never the frame: the error is logged
// and drawing continues.
type Scene struct {
	systems *systems.SystemManager

	objects  []SceneObject
	prepared bool
}

func New(sm *systems.SystemManager) *Scene {
	return &Scene{
		systems: sm,
		objects: deskObjects(),
	}
}

// Objects exposes the composition in draw order.
func (s *Scene) Objects() []SceneObject {
	return s.objects
}

// Prepare loads textures, materials, lights and meshes, in that order.
// Texture failures are tolerated; a mesh upload failure is fatal because
// the composition cannot draw without its primitives.
func (s *Scene) Prepare() error {
	for _, asset := range deskTextures() {
		path := s.systems.AssetManager.TexturePath(asset.File)
		if err := s.systems.TextureSystem.Load(path, asset.Tag); err != nil {
			core.LogWarn("texture '%s' unavailable, objects using it will fall back: %s", asset.Tag, err)
		}
	}
	s.systems.TextureSystem.BindAll()

	for _, material := range deskMaterials() {
		s.systems.MaterialSystem.Define(material)
	}

	for _, light := range deskLights() {
		if err := s.systems.LightSystem.Add(light); err != nil {
			return err
		}
	}
	if err := s.systems.LightSystem.Apply(); err != nil {
		return err
	}

	for _, kind := range deskMeshKinds() {
		if err := s.systems.MeshSystem.LoadMesh(kind); err != nil {
			return err
		}
	}

	s.prepared = true
	core.LogInfo("scene prepared: %d textures, %d materials, %d lights, %d objects",
		s.systems.TextureSystem.Count(), s.systems.MaterialSystem.Count(),
		s.systems.LightSystem.Count(), len(s.objects))
	return nil
}

// Render pushes the camera and replays every object against the shared
// primitives. Objects are drawn in declaration order.
func (s *Scene) Render() error {
	if !s.prepared {
		return core.ErrMeshNotLoaded
	}

	renderer := s.systems.RendererSystem
	s.systems.CameraSystem.Apply()

	for _, object := range s.objects {
		renderer.SetTransform(math.NewMat4Model(object.Scale, object.RotationDegrees, object.Position))

		if object.TextureTag != "" {
			if err := renderer.SetTexture(object.TextureTag); err != nil {
				core.LogWarn("object '%s': %s", object.Name, err)
			}
			renderer.SetTextureScale(object.UVScale.X, object.UVScale.Y)
		} else {
			renderer.SetFlatColor(object.Color.X, object.Color.Y, object.Color.Z, object.Color.W)
		}

		if object.MaterialTag != "" {
			if err := renderer.SetMaterial(object.MaterialTag); err != nil {
				core.LogWarn("object '%s': %s", object.Name, err)
			}
		}

		if err := s.systems.MeshSystem.DrawMesh(object.Kind); err != nil {
			core.LogWarn("object '%s' skipped: %s", object.Name, err)
		}
	}
	return nil
}

// Shutdown releases the GPU resources held by the composition.
func (s *Scene) Shutdown() {
	s.systems.MeshSystem.ReleaseAll()
	s.systems.TextureSystem.ReleaseAll()
	s.prepared = false
}
