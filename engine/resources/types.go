package resources

import (
	"github.com/spaghettifunk/tableau/engine/math"
)

/** @brief The maximum number of GPU texture units addressable by slot. */
const MaxTextureSlots = 16

/** @brief The maximum number of static light sources pushed to the shader. */
const MaxLightSources = 4

/** @brief The sentinel returned when a texture tag resolves to no slot. */
const SlotNotFound = -1

/**
 * @brief A GPU-resident 2D texture registered under a caller-chosen tag.
 * The slot is the texture-unit index assigned at load time, stable until
 * teardown.
 */
type Texture struct {
	// Caller-chosen identifier used for lookup.
	Tag string
	// Texture-unit index, equal to the insertion position in the registry.
	Slot int
	// Unique id for this upload, for logging.
	UUID         string
	Width        uint32
	Height       uint32
	ChannelCount uint8
	// Backend-private handle (e.g. the GL texture name).
	InternalData interface{}
}

/**
 * @brief A named bundle of shading parameters. Defined once during scene
 * setup, immutable afterwards.
 */
type Material struct {
	Tag             string
	AmbientColor    math.Vec3
	AmbientStrength float32
	DiffuseColor    math.Vec3
	SpecularColor   math.Vec3
	Shininess       float32
}

/**
 * @brief A static point light descriptor, pushed once through the renderer
 * during scene setup.
 */
type LightSource struct {
	Position          math.Vec3
	AmbientColor      math.Vec3
	DiffuseColor      math.Vec3
	SpecularColor     math.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// MeshKind identifies one of the fixed primitive shapes.
type MeshKind int

const (
	MeshKindPlane MeshKind = iota
	MeshKindBox
	MeshKindCylinder
	MeshKindSphere
	MeshKindPrism
	MeshKindTaperedCylinder
	MeshKindCone
)

func (mk MeshKind) String() string {
	switch mk {
	case MeshKindPlane:
		return "plane"
	case MeshKindBox:
		return "box"
	case MeshKindCylinder:
		return "cylinder"
	case MeshKindSphere:
		return "sphere"
	case MeshKindPrism:
		return "prism"
	case MeshKindTaperedCylinder:
		return "tapered_cylinder"
	case MeshKindCone:
		return "cone"
	}
	return "unknown"
}

/**
 * @brief CPU-side tessellation of a primitive, ready for GPU upload.
 */
type GeometryConfig struct {
	Name     string
	Vertices []math.Vertex3D
	Indices  []uint32
}

/**
 * @brief A GPU-resident mesh created from a GeometryConfig.
 */
type Mesh struct {
	Kind       MeshKind
	UUID       string
	IndexCount uint32
	// Backend-private handles (e.g. GL vertex array/buffer names).
	InternalData interface{}
}

/**
 * @brief The mutable bundle of state consumed by the next mesh draw: current
 * model matrix, flat color or bound texture, UV scale and material. Exactly
 * one bundle exists per renderer and it is owned by it explicitly; every
 * Set* call mutates it and every draw reads it.
 */
type RenderState struct {
	Model       math.Mat4
	Color       math.Vec4
	UseTexture  bool
	TextureSlot int
	UVScale     math.Vec2
	Material    Material
	HasMaterial bool
}

// NewRenderState returns the bundle in its frame-initial configuration:
// identity transform, opaque white flat color, no texture, unit UV scale.
func NewRenderState() *RenderState {
	return &RenderState{
		Model:       math.NewMat4Identity(),
		Color:       math.NewVec4(1, 1, 1, 1),
		UseTexture:  false,
		TextureSlot: SlotNotFound,
		UVScale:     math.NewVec2One(),
	}
}
