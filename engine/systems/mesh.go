package systems

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// MeshSystem owns one GPU mesh per primitive kind. Loading is idempotent;
// a kind is tessellated and uploaded on first request and reused after.
type MeshSystem struct {
	geometrySystem *GeometrySystem
	renderer       *RendererSystem

	meshes map[resources.MeshKind]*resources.Mesh
}

func NewMeshSystem(gs *GeometrySystem, r *RendererSystem) (*MeshSystem, error) {
	return &MeshSystem{
		geometrySystem: gs,
		renderer:       r,
		meshes:         make(map[resources.MeshKind]*resources.Mesh),
	}, nil
}

// LoadMesh tessellates and uploads the primitive if it is not resident yet.
func (ms *MeshSystem) LoadMesh(kind resources.MeshKind) error {
	if _, ok := ms.meshes[kind]; ok {
		return nil
	}

	config := ms.geometrySystem.GenerateConfig(kind)
	mesh := &resources.Mesh{
		Kind: kind,
		UUID: core.GenerateNewID(),
	}
	if err := ms.renderer.MeshCreate(config, mesh); err != nil {
		core.LogError("mesh '%s' upload failed: %s", kind, err)
		return err
	}

	ms.meshes[kind] = mesh
	core.LogDebug("loaded mesh '%s' (%d vertices, %d indices)", kind, len(config.Vertices), len(config.Indices))
	return nil
}

// DrawMesh draws the resident mesh for kind against the current draw state.
func (ms *MeshSystem) DrawMesh(kind resources.MeshKind) error {
	mesh, ok := ms.meshes[kind]
	if !ok {
		return fmt.Errorf("mesh '%s': %w", kind, core.ErrMeshNotLoaded)
	}
	ms.renderer.MeshDraw(mesh)
	return nil
}

// IsLoaded reports whether the primitive is GPU resident.
func (ms *MeshSystem) IsLoaded(kind resources.MeshKind) bool {
	_, ok := ms.meshes[kind]
	return ok
}

// ReleaseAll destroys every resident mesh.
func (ms *MeshSystem) ReleaseAll() {
	for kind, mesh := range ms.meshes {
		ms.renderer.MeshDestroy(mesh)
		delete(ms.meshes, kind)
	}
}

func (ms *MeshSystem) Shutdown() error {
	ms.ReleaseAll()
	return nil
}
