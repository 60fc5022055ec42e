package scene

import (
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// TextureAsset pairs a texture file under the asset root with the tag the
// scene refers to it by.
type TextureAsset struct {
	File string
	Tag  string
}

// SceneObject is one draw in the still life: a shared primitive placed by
// its own transform, painted either with a registered texture or a flat
// color, optionally shaded with a registered material.
type SceneObject struct {
	Name string
	Kind resources.MeshKind

	Scale           math.Vec3
	RotationDegrees math.Vec3
	Position        math.Vec3

	// TextureTag selects textured rendering when non-empty; otherwise
	// Color is used.
	TextureTag string
	Color      math.Vec4
	UVScale    math.Vec2

	// MaterialTag selects the shading bundle; empty keeps whatever
	// material the previous draw left bound.
	MaterialTag string
}

var (
	grey  = math.NewVec4(0.2, 0.2, 0.2, 1)
	black = math.NewVec4(0, 0, 0, 1)
)

// deskTextures lists the image files registered during scene preparation.
// The mousepad texture is loaded with the rest even though the current
// composition draws the mousepad black.
func deskTextures() []TextureAsset {
	return []TextureAsset{
		{File: "keyboard.jpg", Tag: "keyboard"},
		{File: "mousepad.jpg", Tag: "mousepad"},
		{File: "desk.jpg", Tag: "desk"},
		{File: "monitor.jpg", Tag: "monitor"},
		{File: "wall.jpg", Tag: "wall"},
	}
}

// deskMaterials returns the two shading bundles used by the composition:
// a matte one for the desk surface and a shinier one for the wall and the
// monitor screen.
func deskMaterials() []resources.Material {
	return []resources.Material{
		{
			Tag:             "light1",
			AmbientColor:    math.NewVec3(0.2, 0.2, 0.2),
			AmbientStrength: 1.0,
			DiffuseColor:    math.NewVec3(0.4, 0.4, 0.4),
			SpecularColor:   math.NewVec3(0.2, 0.2, 0.2),
			Shininess:       1.0,
		},
		{
			Tag:             "light2",
			AmbientColor:    math.NewVec3(0.1, 0.1, 0.1),
			AmbientStrength: 1.0,
			DiffuseColor:    math.NewVec3(0.4, 0.4, 0.4),
			SpecularColor:   math.NewVec3(0.8, 0.8, 0.8),
			Shininess:       10.0,
		},
	}
}

// deskLights returns the two overhead point lights.
func deskLights() []resources.LightSource {
	light := resources.LightSource{
		Position:          math.NewVec3(0, 5, 0),
		AmbientColor:      math.NewVec3(0.1, 0.1, 0.1),
		DiffuseColor:      math.NewVec3(0.2, 0.2, 0.2),
		SpecularColor:     math.NewVec3(0.2, 0.2, 0.2),
		FocalStrength:     1.0,
		SpecularIntensity: 1.0,
	}
	return []resources.LightSource{light, light}
}

// deskMeshKinds lists the primitives uploaded during preparation. The
// tapered cylinder is kept resident although the current composition does
// not place one.
func deskMeshKinds() []resources.MeshKind {
	return []resources.MeshKind{
		resources.MeshKindPlane,
		resources.MeshKindBox,
		resources.MeshKindCylinder,
		resources.MeshKindSphere,
		resources.MeshKindPrism,
		resources.MeshKindTaperedCylinder,
	}
}

// deskObjects returns the full composition in draw order: desk and wall
// planes, the monitor assembly, the keyboard assembly, the mouse and the
// mousepad. The thin black boxes hide texture wrap-around on the monitor
// and keyboard edges.
func deskObjects() []SceneObject {
	one := math.NewVec2One()
	return []SceneObject{
		{
			Name: "desk surface", Kind: resources.MeshKindPlane,
			Scale:    math.NewVec3(10, 1, 6),
			Position: math.NewVec3(0, 0, 0),
			TextureTag: "desk", UVScale: one, MaterialTag: "light1",
		},
		{
			Name: "back wall", Kind: resources.MeshKindPlane,
			Scale:           math.NewVec3(10, 1, 6),
			RotationDegrees: math.NewVec3(90, 0, 0),
			Position:        math.NewVec3(0, 6, -6),
			TextureTag:      "wall", UVScale: one, MaterialTag: "light2",
		},

		// monitor
		{
			Name: "monitor base", Kind: resources.MeshKindCylinder,
			Scale:    math.NewVec3(1, 0.1, 1),
			Position: math.NewVec3(0, 0, -3),
			Color:    grey,
		},
		{
			Name: "monitor base left leg", Kind: resources.MeshKindPrism,
			Scale:           math.NewVec3(0.5, 0.1, 2),
			RotationDegrees: math.NewVec3(0, -40, 0),
			Position:        math.NewVec3(-1.3, 0, -1.55),
			Color:           grey,
		},
		{
			Name: "monitor base right leg", Kind: resources.MeshKindPrism,
			Scale:           math.NewVec3(0.5, 0.1, 2),
			RotationDegrees: math.NewVec3(0, 40, 0),
			Position:        math.NewVec3(1.3, 0, -1.55),
			Color:           grey,
		},
		{
			Name: "monitor support column", Kind: resources.MeshKindCylinder,
			Scale:    math.NewVec3(0.25, 4, 0.25),
			Position: math.NewVec3(0, 0, -3),
			Color:    grey,
		},
		{
			Name: "monitor arm connector", Kind: resources.MeshKindBox,
			Scale:    math.NewVec3(0.3, 0.3, 1),
			Position: math.NewVec3(0, 2.5, -2.5),
			Color:    grey,
		},
		{
			Name: "monitor screen", Kind: resources.MeshKindBox,
			Scale:      math.NewVec3(5.5, 3.5, 0.2),
			Position:   math.NewVec3(0, 3, -2),
			TextureTag: "monitor", UVScale: one, MaterialTag: "light2",
		},
		{
			Name: "monitor back cover", Kind: resources.MeshKindBox,
			Scale:    math.NewVec3(5.5, 3.5, 0.01),
			Position: math.NewVec3(0, 3, -2.11),
			Color:    black,
		},
		{
			Name: "monitor top trim", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(5.5, 0.21, 0.01),
			RotationDegrees: math.NewVec3(90, 0, 0),
			Position:        math.NewVec3(0, 4.75, -2.01),
			Color:           black,
		},
		{
			Name: "monitor bottom trim", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(5.5, 0.21, 0.01),
			RotationDegrees: math.NewVec3(90, 0, 0),
			Position:        math.NewVec3(0, 1.25, -2.01),
			Color:           black,
		},
		{
			Name: "monitor right trim", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(3.5, 0.21, 0.01),
			RotationDegrees: math.NewVec3(90, 90, 0),
			Position:        math.NewVec3(2.75, 3, -2.01),
			Color:           black,
		},
		{
			Name: "monitor left trim", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(3.5, 0.21, 0.01),
			RotationDegrees: math.NewVec3(90, 90, 0),
			Position:        math.NewVec3(-2.75, 3, -2.01),
			Color:           black,
		},

		// keyboard
		{
			Name: "keyboard deck", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(4, 1, 0.1),
			RotationDegrees: math.NewVec3(100, 0, 180),
			Position:        math.NewVec3(-2, 0.2, 2),
			TextureTag:      "keyboard", UVScale: one,
		},
		{
			Name: "keyboard right edge", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.02, 1, 0.1),
			RotationDegrees: math.NewVec3(100, 0, 0),
			Position:        math.NewVec3(0.01, 0.2, 2),
			Color:           grey,
		},
		{
			Name: "keyboard left edge", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.02, 1, 0.1),
			RotationDegrees: math.NewVec3(100, 0, 0),
			Position:        math.NewVec3(-4.01, 0.2, 2),
			Color:           grey,
		},
		{
			Name: "keyboard top edge", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.02, 4.04, 0.1),
			RotationDegrees: math.NewVec3(100, 0, 90),
			Position:        math.NewVec3(-2, 0.29, 1.5),
			Color:           grey,
		},
		{
			Name: "keyboard bottom edge", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.02, 4.04, 0.1),
			RotationDegrees: math.NewVec3(100, 0, 90),
			Position:        math.NewVec3(-2, 0.11, 2.5),
			Color:           grey,
		},
		{
			Name: "keyboard underside", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(1.035, 4.04, 0.01),
			RotationDegrees: math.NewVec3(100, 0, 90),
			Position:        math.NewVec3(-2, 0.15, 1.99),
			Color:           grey,
		},
		{
			Name: "keyboard wrist rest", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(4, 0.4, 0.05),
			RotationDegrees: math.NewVec3(100, 0, 0),
			Position:        math.NewVec3(-2, 0.1, 2.69),
			Color:           grey,
		},
		{
			Name: "keyboard right foot", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.2, 0.03, 0.1),
			RotationDegrees: math.NewVec3(100, 90, 0),
			Position:        math.NewVec3(-0.1, 0.15, 1.5),
			Color:           grey,
		},
		{
			Name: "keyboard left foot", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.2, 0.03, 0.1),
			RotationDegrees: math.NewVec3(100, 90, 0),
			Position:        math.NewVec3(-3.9, 0.15, 1.5),
			Color:           grey,
		},

		// mouse
		{
			Name: "mouse body", Kind: resources.MeshKindSphere,
			Scale:    math.NewVec3(0.6, 0.15, 0.9),
			Position: math.NewVec3(2.3, 0.18, 2),
			Color:    grey,
		},
		{
			Name: "mouse scroll wheel", Kind: resources.MeshKindCylinder,
			Scale:           math.NewVec3(0.1, 0.1, 0.1),
			RotationDegrees: math.NewVec3(90, 0, 90),
			Position:        math.NewVec3(2.35, 0.25, 1.5),
			Color:           black,
		},
		{
			Name: "mouse near side button", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.2, 0.02, 0.02),
			RotationDegrees: math.NewVec3(90, 45, 90),
			Position:        math.NewVec3(1.82, 0.26, 1.9),
			Color:           black,
		},
		{
			Name: "mouse far side button", Kind: resources.MeshKindBox,
			Scale:           math.NewVec3(0.2, 0.02, 0.02),
			RotationDegrees: math.NewVec3(90, 45, 90),
			Position:        math.NewVec3(1.82, 0.26, 2.15),
			Color:           black,
		},

		// mousepad
		{
			Name: "mousepad", Kind: resources.MeshKindBox,
			Scale:    math.NewVec3(10, 0.05, 5),
			Position: math.NewVec3(0, 0, 2),
			Color:    black,
		},
	}
}
