package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/resources"
)

func TestGeneratePlaneConfig(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GeneratePlaneConfig()
	assert.Len(t, config.Vertices, 4)
	assert.Len(t, config.Indices, 6)
	for _, v := range config.Vertices {
		assert.Equal(t, float32(0), v.Position.Y)
		assert.Equal(t, math.NewVec3Up(), v.Normal)
	}
}

func TestGenerateBoxConfig(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GenerateBoxConfig()
	assert.Len(t, config.Vertices, 24)
	assert.Len(t, config.Indices, 36)
	for _, v := range config.Vertices {
		// Unit cube centered at the origin.
		assert.LessOrEqual(t, abs32(v.Position.X), float32(0.5))
		assert.LessOrEqual(t, abs32(v.Position.Y), float32(0.5))
		assert.LessOrEqual(t, abs32(v.Position.Z), float32(0.5))
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-5)
	}
}

func TestGenerateCylinderConfigSpansUnitHeight(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GenerateCylinderConfig(12)
	require.NotEmpty(t, config.Vertices)
	var minY, maxY float32 = 1e9, -1e9
	for _, v := range config.Vertices {
		if v.Position.Y < minY {
			minY = v.Position.Y
		}
		if v.Position.Y > maxY {
			maxY = v.Position.Y
		}
	}
	assert.Equal(t, float32(0), minY)
	assert.Equal(t, float32(1), maxY)
	// All triangles, so indices come in threes.
	assert.Zero(t, len(config.Indices)%3)
}

func TestGenerateConeHasNoTopCap(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	cone := gs.GenerateConeConfig(12)
	cylinder := gs.GenerateCylinderConfig(12)
	assert.Less(t, len(cone.Vertices), len(cylinder.Vertices))

	// Every top-ring vertex collapses to the apex.
	for _, v := range cone.Vertices {
		if v.Position.Y == 1 {
			assert.Equal(t, float32(0), v.Position.X)
			assert.Equal(t, float32(0), v.Position.Z)
		}
	}
}

func TestGenerateTaperedCylinderTopRadius(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GenerateTaperedCylinderConfig(12, 0.5)
	var maxTopRadius float32
	for _, v := range config.Vertices {
		if v.Position.Y == 1 {
			r := v.Position.X*v.Position.X + v.Position.Z*v.Position.Z
			if r > maxTopRadius {
				maxTopRadius = r
			}
		}
	}
	assert.InDelta(t, 0.25, maxTopRadius, 1e-5)
}

func TestGenerateSphereConfigUnitRadius(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GenerateSphereConfig(8, 12)
	for _, v := range config.Vertices {
		assert.InDelta(t, 1.0, v.Position.Length(), 1e-5)
		// The normal of a unit sphere equals the position.
		assert.InDelta(t, float64(v.Position.X), float64(v.Normal.X), 1e-6)
	}
	assert.Zero(t, len(config.Indices)%3)
}

func TestGeneratePrismConfig(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	config := gs.GeneratePrismConfig()
	assert.Len(t, config.Vertices, 18)
	assert.Len(t, config.Indices, 24)
	for _, v := range config.Vertices {
		assert.GreaterOrEqual(t, v.Position.Y, float32(0))
		assert.LessOrEqual(t, v.Position.Y, float32(1))
	}
}

func TestGenerateConfigDispatchesEveryKind(t *testing.T) {
	gs, err := NewGeometrySystem()
	require.NoError(t, err)

	kinds := []resources.MeshKind{
		resources.MeshKindPlane,
		resources.MeshKindBox,
		resources.MeshKindCylinder,
		resources.MeshKindSphere,
		resources.MeshKindPrism,
		resources.MeshKindTaperedCylinder,
		resources.MeshKindCone,
	}
	for _, kind := range kinds {
		config := gs.GenerateConfig(kind)
		require.NotNil(t, config, kind.String())
		assert.Equal(t, kind.String(), config.Name)
		assert.NotEmpty(t, config.Vertices, kind.String())
		assert.NotEmpty(t, config.Indices, kind.String())
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
