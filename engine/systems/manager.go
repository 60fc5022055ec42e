package systems

import (
	"github.com/spaghettifunk/tableau/engine/assets"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// SystemManager constructs and wires every subsystem in dependency order
// and tears them down in reverse.
type SystemManager struct {
	AssetManager *assets.AssetManager

	RendererSystem *RendererSystem
	TextureSystem  *TextureSystem
	MaterialSystem *MaterialSystem
	LightSystem    *LightSystem
	GeometrySystem *GeometrySystem
	MeshSystem     *MeshSystem
	CameraSystem   *CameraSystem
}

func NewSystemManager(appName string, width, height uint32, backend renderer.RendererBackend, am *assets.AssetManager) (*SystemManager, error) {
	rendererSystem, err := NewRendererSystem(appName, width, height, backend)
	if err != nil {
		return nil, err
	}
	textureSystem, err := NewTextureSystem(&TextureSystemConfig{MaxTextureCount: resources.MaxTextureSlots}, am, rendererSystem)
	if err != nil {
		return nil, err
	}
	materialSystem, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 64})
	if err != nil {
		return nil, err
	}
	lightSystem, err := NewLightSystem(rendererSystem)
	if err != nil {
		return nil, err
	}
	geometrySystem, err := NewGeometrySystem()
	if err != nil {
		return nil, err
	}
	meshSystem, err := NewMeshSystem(geometrySystem, rendererSystem)
	if err != nil {
		return nil, err
	}
	cameraSystem, err := NewCameraSystem(rendererSystem, width, height)
	if err != nil {
		return nil, err
	}

	rendererSystem.AttachRegistries(textureSystem, materialSystem)

	return &SystemManager{
		AssetManager:   am,
		RendererSystem: rendererSystem,
		TextureSystem:  textureSystem,
		MaterialSystem: materialSystem,
		LightSystem:    lightSystem,
		GeometrySystem: geometrySystem,
		MeshSystem:     meshSystem,
		CameraSystem:   cameraSystem,
	}, nil
}

func (sm *SystemManager) Initialize() error {
	if err := sm.RendererSystem.Initialize(); err != nil {
		core.LogError("renderer system failed to initialize: %s", err)
		return err
	}
	return nil
}

// OnResized propagates a window resize to the backend and the camera.
func (sm *SystemManager) OnResized(width, height uint16) {
	sm.RendererSystem.OnResized(width, height)
	sm.CameraSystem.OnResize(uint32(width), uint32(height))
}

func (sm *SystemManager) Shutdown() error {
	sm.MeshSystem.Shutdown()
	sm.TextureSystem.Shutdown()
	sm.MaterialSystem.Shutdown()
	sm.LightSystem.Shutdown()
	if err := sm.RendererSystem.Shutdown(); err != nil {
		core.LogError("renderer system failed to shut down: %s", err)
		return err
	}
	return nil
}
