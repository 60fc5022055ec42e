package core

import (
	"errors"
)

var (
	// ErrTextureNotFound is returned when a texture tag has never been loaded.
	ErrTextureNotFound = errors.New("texture tag not registered")
	// ErrMaterialNotFound is returned when a material tag has never been defined.
	ErrMaterialNotFound = errors.New("material tag not registered")
	// ErrUnsupportedChannelCount is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedChannelCount = errors.New("unsupported image channel count")
	// ErrTextureSlotsExhausted is returned when all GPU texture units are taken.
	ErrTextureSlotsExhausted = errors.New("no free texture slots")
	// ErrMeshNotLoaded is returned when drawing a mesh kind that was never prepared.
	ErrMeshNotLoaded = errors.New("mesh not loaded")
	// ErrTooManyLights is returned when adding a light beyond the shader's fixed array.
	ErrTooManyLights = errors.New("light source limit reached")
)
