package systems

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// LightSystem collects the static point lights declared during scene setup
// and pushes them to the shader once. The shader holds a fixed-size array,
// so at most MaxLightSources lights are accepted.
type LightSystem struct {
	lights   []resources.LightSource
	renderer *RendererSystem
}

func NewLightSystem(r *RendererSystem) (*LightSystem, error) {
	return &LightSystem{
		lights:   make([]resources.LightSource, 0, resources.MaxLightSources),
		renderer: r,
	}, nil
}

// Add declares one light. Fails once the shader array is full.
func (ls *LightSystem) Add(light resources.LightSource) error {
	if len(ls.lights) >= resources.MaxLightSources {
		err := fmt.Errorf("at most %d lights are supported: %w", resources.MaxLightSources, core.ErrTooManyLights)
		core.LogError(err.Error())
		return err
	}
	ls.lights = append(ls.lights, light)
	return nil
}

func (ls *LightSystem) Count() int {
	return len(ls.lights)
}

// Apply pushes every declared light to the shader and enables the lighting
// path. With no lights declared the lighting path stays off and objects
// render with their flat color or texture only.
func (ls *LightSystem) Apply() error {
	if len(ls.lights) == 0 {
		core.LogWarn("no lights declared, scene renders unlit")
		return nil
	}
	for i, light := range ls.lights {
		if err := ls.renderer.SetLight(i, light); err != nil {
			return err
		}
	}
	ls.renderer.EnableLighting()
	return nil
}

func (ls *LightSystem) Shutdown() error {
	ls.lights = ls.lights[:0]
	return nil
}
