package systems

import (
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/resources"
)

type MaterialSystemConfig struct {
	MaxMaterialCount uint32
}

// MaterialSystem is the tag registry for shading parameter bundles.
// Definitions are append-only; duplicate tags are allowed and lookups
// always return the first definition, so later duplicates are inert.
type MaterialSystem struct {
	Config *MaterialSystemConfig

	registered []resources.Material
}

func NewMaterialSystem(config *MaterialSystemConfig) (*MaterialSystem, error) {
	if config.MaxMaterialCount == 0 {
		config.MaxMaterialCount = 64
	}
	return &MaterialSystem{
		Config:     config,
		registered: make([]resources.Material, 0, config.MaxMaterialCount),
	}, nil
}

// Define appends a material under the given tag. A duplicate tag is
// accepted silently but will never be returned by Acquire.
func (ms *MaterialSystem) Define(material resources.Material) {
	if uint32(len(ms.registered)) >= ms.Config.MaxMaterialCount {
		core.LogWarn("material registry full, dropping '%s'", material.Tag)
		return
	}
	ms.registered = append(ms.registered, material)
	core.LogDebug("defined material '%s'", material.Tag)
}

// Acquire resolves tag by scanning in definition order, first match wins.
func (ms *MaterialSystem) Acquire(tag string) (resources.Material, bool) {
	for _, m := range ms.registered {
		if m.Tag == tag {
			return m, true
		}
	}
	return resources.Material{}, false
}

func (ms *MaterialSystem) Count() int {
	return len(ms.registered)
}

func (ms *MaterialSystem) Shutdown() error {
	ms.registered = ms.registered[:0]
	return nil
}
