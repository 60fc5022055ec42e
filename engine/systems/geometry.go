package systems

import (
	gomath "math"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

// Default ring tessellation for the round primitives.
const defaultSegmentCount = 36

// GeometrySystem tessellates the fixed set of unit primitives on the CPU.
// Every primitive is generated once per scene; objects of the same shape
// share the mesh and differ only by their model transform.
type GeometrySystem struct{}

func NewGeometrySystem() (*GeometrySystem, error) {
	return &GeometrySystem{}, nil
}

// GenerateConfig returns the tessellation for the given primitive kind
// using default tessellation parameters.
func (gs *GeometrySystem) GenerateConfig(kind resources.MeshKind) *resources.GeometryConfig {
	switch kind {
	case resources.MeshKindPlane:
		return gs.GeneratePlaneConfig()
	case resources.MeshKindBox:
		return gs.GenerateBoxConfig()
	case resources.MeshKindCylinder:
		return gs.GenerateCylinderConfig(defaultSegmentCount)
	case resources.MeshKindSphere:
		return gs.GenerateSphereConfig(18, defaultSegmentCount)
	case resources.MeshKindPrism:
		return gs.GeneratePrismConfig()
	case resources.MeshKindTaperedCylinder:
		return gs.GenerateTaperedCylinderConfig(defaultSegmentCount, 0.5)
	case resources.MeshKindCone:
		return gs.GenerateConeConfig(defaultSegmentCount)
	}
	core.LogWarn("unknown mesh kind %d, falling back to plane", kind)
	return gs.GeneratePlaneConfig()
}

// GeneratePlaneConfig builds a quad in the XZ plane spanning [-1, 1] on both
// axes with the normal facing +Y.
func (gs *GeometrySystem) GeneratePlaneConfig() *resources.GeometryConfig {
	up := math.NewVec3Up()
	vertices := []math.Vertex3D{
		{Position: math.NewVec3(-1, 0, 1), Normal: up, Texcoord: math.NewVec2(0, 0)},
		{Position: math.NewVec3(1, 0, 1), Normal: up, Texcoord: math.NewVec2(1, 0)},
		{Position: math.NewVec3(1, 0, -1), Normal: up, Texcoord: math.NewVec2(1, 1)},
		{Position: math.NewVec3(-1, 0, -1), Normal: up, Texcoord: math.NewVec2(0, 1)},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return &resources.GeometryConfig{
		Name:     resources.MeshKindPlane.String(),
		Vertices: vertices,
		Indices:  indices,
	}
}

// GenerateBoxConfig builds a unit cube centered at the origin with per-face
// normals, so every face shades flat.
func (gs *GeometrySystem) GenerateBoxConfig() *resources.GeometryConfig {
	const h = 0.5
	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{math.NewVec3(0, 0, 1), [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.NewVec3(0, 0, -1), [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.NewVec3(1, 0, 0), [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.NewVec3(-1, 0, 0), [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{math.NewVec3(0, 1, 0), [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{math.NewVec3(0, -1, 0), [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
	}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	vertices := make([]math.Vertex3D, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, corner := range f.corners {
			vertices = append(vertices, math.Vertex3D{
				Position: corner,
				Normal:   f.normal,
				Texcoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return &resources.GeometryConfig{
		Name:     resources.MeshKindBox.String(),
		Vertices: vertices,
		Indices:  indices,
	}
}

// GenerateCylinderConfig builds a cylinder of radius 1 with its base at
// y=0 and top at y=1.
func (gs *GeometrySystem) GenerateCylinderConfig(segments int) *resources.GeometryConfig {
	return gs.generateFrustum(resources.MeshKindCylinder, segments, 1.0, 1.0)
}

// GenerateTaperedCylinderConfig builds a frustum of base radius 1 and the
// given top radius, base at y=0 and top at y=1.
func (gs *GeometrySystem) GenerateTaperedCylinderConfig(segments int, topRadius float32) *resources.GeometryConfig {
	return gs.generateFrustum(resources.MeshKindTaperedCylinder, segments, 1.0, topRadius)
}

// GenerateConeConfig builds a cone of base radius 1 with its base at y=0
// and apex at (0, 1, 0).
func (gs *GeometrySystem) GenerateConeConfig(segments int) *resources.GeometryConfig {
	config := gs.generateFrustum(resources.MeshKindCone, segments, 1.0, 0.0)
	config.Name = resources.MeshKindCone.String()
	return config
}

// generateFrustum is the shared body for the round side-wall primitives.
// Side normals tilt with the slope; base and top caps use straight up/down
// normals with radially mapped texcoords.
func (gs *GeometrySystem) generateFrustum(kind resources.MeshKind, segments int, baseRadius, topRadius float32) *resources.GeometryConfig {
	if segments < 3 {
		segments = 3
	}

	vertices := make([]math.Vertex3D, 0, (segments+1)*2+segments*2+2)
	indices := make([]uint32, 0, segments*12)

	// The side normal is perpendicular to the slanted wall.
	slope := baseRadius - topRadius
	sideNormal := func(s, c float32) math.Vec3 {
		n := math.NewVec3(c, slope, s)
		return n.Normalize()
	}

	// Side wall, duplicated seam vertex so UVs wrap cleanly.
	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * gomath.Pi
		s := float32(gomath.Sin(angle))
		c := float32(gomath.Cos(angle))
		u := float32(i) / float32(segments)
		n := sideNormal(s, c)
		vertices = append(vertices,
			math.Vertex3D{Position: math.NewVec3(c*baseRadius, 0, s*baseRadius), Normal: n, Texcoord: math.NewVec2(u, 0)},
			math.Vertex3D{Position: math.NewVec3(c*topRadius, 1, s*topRadius), Normal: n, Texcoord: math.NewVec2(u, 1)},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+2, base+1,
			base+1, base+2, base+3)
	}

	// Base cap.
	baseCenter := uint32(len(vertices))
	down := math.NewVec3(0, -1, 0)
	vertices = append(vertices, math.Vertex3D{Position: math.NewVec3Zero(), Normal: down, Texcoord: math.NewVec2(0.5, 0.5)})
	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * 2 * gomath.Pi
		s := float32(gomath.Sin(angle))
		c := float32(gomath.Cos(angle))
		vertices = append(vertices, math.Vertex3D{
			Position: math.NewVec3(c*baseRadius, 0, s*baseRadius),
			Normal:   down,
			Texcoord: math.NewVec2(0.5+c*0.5, 0.5+s*0.5),
		})
	}
	for i := 0; i < segments; i++ {
		next := uint32((i + 1) % segments)
		indices = append(indices, baseCenter, baseCenter+1+uint32(i), baseCenter+1+next)
	}

	// Top cap, absent when the frustum closes into a cone.
	if topRadius > 0 {
		topCenter := uint32(len(vertices))
		up := math.NewVec3Up()
		vertices = append(vertices, math.Vertex3D{Position: math.NewVec3(0, 1, 0), Normal: up, Texcoord: math.NewVec2(0.5, 0.5)})
		for i := 0; i < segments; i++ {
			angle := float64(i) / float64(segments) * 2 * gomath.Pi
			s := float32(gomath.Sin(angle))
			c := float32(gomath.Cos(angle))
			vertices = append(vertices, math.Vertex3D{
				Position: math.NewVec3(c*topRadius, 1, s*topRadius),
				Normal:   up,
				Texcoord: math.NewVec2(0.5+c*0.5, 0.5+s*0.5),
			})
		}
		for i := 0; i < segments; i++ {
			next := uint32((i + 1) % segments)
			indices = append(indices, topCenter, topCenter+1+next, topCenter+1+uint32(i))
		}
	}

	return &resources.GeometryConfig{
		Name:     kind.String(),
		Vertices: vertices,
		Indices:  indices,
	}
}

// GenerateSphereConfig builds a unit sphere centered at the origin from
// latitude stacks and longitude slices.
func (gs *GeometrySystem) GenerateSphereConfig(stacks, slices int) *resources.GeometryConfig {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	vertices := make([]math.Vertex3D, 0, (stacks+1)*(slices+1))
	indices := make([]uint32, 0, stacks*slices*6)

	for i := 0; i <= stacks; i++ {
		phi := float64(i) / float64(stacks) * gomath.Pi
		y := float32(gomath.Cos(phi))
		ringRadius := float32(gomath.Sin(phi))
		for j := 0; j <= slices; j++ {
			theta := float64(j) / float64(slices) * 2 * gomath.Pi
			x := ringRadius * float32(gomath.Cos(theta))
			z := ringRadius * float32(gomath.Sin(theta))
			p := math.NewVec3(x, y, z)
			vertices = append(vertices, math.Vertex3D{
				Position: p,
				// A unit sphere's normal is its position.
				Normal:   p,
				Texcoord: math.NewVec2(float32(j)/float32(slices), 1-float32(i)/float32(stacks)),
			})
		}
	}

	ringStride := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*ringStride + uint32(j)
			b := a + ringStride
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1)
		}
	}

	return &resources.GeometryConfig{
		Name:     resources.MeshKindSphere.String(),
		Vertices: vertices,
		Indices:  indices,
	}
}

// GeneratePrismConfig builds a triangular prism: an isoceles cross-section
// spanning x in [-0.5, 0.5] and y in [0, 1] with the apex on top, extruded
// along z in [-0.5, 0.5]. Wall normals are flat per face.
func (gs *GeometrySystem) GeneratePrismConfig() *resources.GeometryConfig {
	const h = 0.5
	// Cross-section corners, counter-clockwise seen from +Z.
	left := math.NewVec2(-h, 0)
	right := math.NewVec2(h, 0)
	apex := math.NewVec2(0, 1)

	vertices := make([]math.Vertex3D, 0, 6+4*3)
	indices := make([]uint32, 0, 6+6*3)

	// Front and back triangle faces.
	front := math.NewVec3(0, 0, 1)
	back := math.NewVec3(0, 0, -1)
	vertices = append(vertices,
		math.Vertex3D{Position: math.NewVec3(left.X, left.Y, h), Normal: front, Texcoord: math.NewVec2(0, 0)},
		math.Vertex3D{Position: math.NewVec3(right.X, right.Y, h), Normal: front, Texcoord: math.NewVec2(1, 0)},
		math.Vertex3D{Position: math.NewVec3(apex.X, apex.Y, h), Normal: front, Texcoord: math.NewVec2(0.5, 1)},
		math.Vertex3D{Position: math.NewVec3(right.X, right.Y, -h), Normal: back, Texcoord: math.NewVec2(0, 0)},
		math.Vertex3D{Position: math.NewVec3(left.X, left.Y, -h), Normal: back, Texcoord: math.NewVec2(1, 0)},
		math.Vertex3D{Position: math.NewVec3(apex.X, apex.Y, -h), Normal: back, Texcoord: math.NewVec2(0.5, 1)},
	)
	indices = append(indices, 0, 1, 2, 3, 4, 5)

	// The three rectangular walls: bottom and the two slanted sides.
	walls := []struct {
		a, b math.Vec2
	}{
		{right, left}, // bottom
		{left, apex},  // left slope
		{apex, right}, // right slope
	}
	for _, w := range walls {
		edge := math.NewVec3(w.b.X-w.a.X, w.b.Y-w.a.Y, 0)
		along := math.NewVec3(0, 0, -1)
		normal := edge.Cross(along).Normalize()
		base := uint32(len(vertices))
		vertices = append(vertices,
			math.Vertex3D{Position: math.NewVec3(w.a.X, w.a.Y, h), Normal: normal, Texcoord: math.NewVec2(0, 0)},
			math.Vertex3D{Position: math.NewVec3(w.b.X, w.b.Y, h), Normal: normal, Texcoord: math.NewVec2(1, 0)},
			math.Vertex3D{Position: math.NewVec3(w.b.X, w.b.Y, -h), Normal: normal, Texcoord: math.NewVec2(1, 1)},
			math.Vertex3D{Position: math.NewVec3(w.a.X, w.a.Y, -h), Normal: normal, Texcoord: math.NewVec2(0, 1)},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &resources.GeometryConfig{
		Name:     resources.MeshKindPrism.String(),
		Vertices: vertices,
		Indices:  indices,
	}
}
