package systems

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/assets"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/resources"
)

type TextureSystemConfig struct {
	MaxTextureCount uint32
}

// TextureSystem is the tag-to-slot registry for scene textures. Slots are
// assigned by insertion order and never change or get reused for the life
// of the scene. A failed load leaves the registry exactly as it was.
type TextureSystem struct {
	Config *TextureSystemConfig

	registered []*resources.Texture

	assetManager *assets.AssetManager
	renderer     *RendererSystem
}

func NewTextureSystem(config *TextureSystemConfig, am *assets.AssetManager, r *RendererSystem) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("texture system config - MaxTextureCount must be greater than 0")
		core.LogError(err.Error())
		return nil, err
	}
	if config.MaxTextureCount > resources.MaxTextureSlots {
		core.LogWarn("MaxTextureCount %d exceeds the %d addressable texture units, clamping", config.MaxTextureCount, resources.MaxTextureSlots)
		config.MaxTextureCount = resources.MaxTextureSlots
	}
	return &TextureSystem{
		Config:       config,
		registered:   make([]*resources.Texture, 0, config.MaxTextureCount),
		assetManager: am,
		renderer:     r,
	}, nil
}

// Load decodes the image at filePath, uploads it and registers it under tag
// with the next free slot. Images with a channel count other than 3 or 4 are
// rejected before any registry mutation.
func (ts *TextureSystem) Load(filePath, tag string) error {
	if uint32(len(ts.registered)) >= ts.Config.MaxTextureCount {
		err := fmt.Errorf("cannot load texture '%s': %w", tag, core.ErrTextureSlotsExhausted)
		core.LogError(err.Error())
		return err
	}

	img, err := ts.assetManager.LoadImage(filePath)
	if err != nil {
		core.LogError("texture '%s': %s", tag, err)
		return err
	}
	if img.ChannelCount != 3 && img.ChannelCount != 4 {
		err := fmt.Errorf("texture '%s' has %d channels: %w", tag, img.ChannelCount, core.ErrUnsupportedChannelCount)
		core.LogError(err.Error())
		return err
	}

	texture := &resources.Texture{
		Tag:          tag,
		Slot:         len(ts.registered),
		UUID:         core.GenerateNewID(),
		Width:        img.Width,
		Height:       img.Height,
		ChannelCount: img.ChannelCount,
	}
	if err := ts.renderer.TextureCreate(img.Pixels, texture); err != nil {
		core.LogError("texture '%s' upload failed: %s", tag, err)
		return err
	}

	ts.registered = append(ts.registered, texture)
	core.LogInfo("loaded texture '%s' (%dx%d, %d channels) into slot %d", tag, img.Width, img.Height, img.ChannelCount, texture.Slot)
	return nil
}

// Slot resolves tag to its texture-unit index by scanning in insertion
// order; the first match wins. Returns SlotNotFound for unknown tags.
func (ts *TextureSystem) Slot(tag string) int {
	for _, t := range ts.registered {
		if t.Tag == tag {
			return t.Slot
		}
	}
	return resources.SlotNotFound
}

// Get returns the registered texture for tag, first match wins.
func (ts *TextureSystem) Get(tag string) (*resources.Texture, bool) {
	for _, t := range ts.registered {
		if t.Tag == tag {
			return t, true
		}
	}
	return nil, false
}

func (ts *TextureSystem) Count() int {
	return len(ts.registered)
}

// BindAll binds every registered texture to the texture unit matching its
// slot. Called once after all loads, before the first frame.
func (ts *TextureSystem) BindAll() {
	for _, t := range ts.registered {
		ts.renderer.TextureBindUnit(uint32(t.Slot), t)
	}
}

// ReleaseAll destroys every GPU texture and empties the registry.
func (ts *TextureSystem) ReleaseAll() {
	for _, t := range ts.registered {
		ts.renderer.TextureDestroy(t)
	}
	ts.registered = ts.registered[:0]
}

func (ts *TextureSystem) Shutdown() error {
	ts.ReleaseAll()
	return nil
}
