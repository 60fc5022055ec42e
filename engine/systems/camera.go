package systems

import (
	"github.com/spaghettifunk/tableau/engine/math"
)

const (
	minFOVDegrees = 10.0
	maxFOVDegrees = 120.0
)

// Camera is a fixed viewpoint: the scene is a still life, so nothing moves
// it at runtime, but the projection tracks window resizes.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOVDegrees float32
	NearClip   float32
	FarClip    float32

	aspectRatio float32
}

// CameraSystem owns the scene camera and pushes its matrices through the
// renderer at the start of every frame.
type CameraSystem struct {
	camera   *Camera
	renderer *RendererSystem
}

func NewCameraSystem(r *RendererSystem, width, height uint32) (*CameraSystem, error) {
	return &CameraSystem{
		camera: &Camera{
			Position:    math.NewVec3(0, 5, 12),
			Target:      math.NewVec3(0, 2.5, 0),
			Up:          math.NewVec3Up(),
			FOVDegrees:  80,
			NearClip:    0.1,
			FarClip:     100,
			aspectRatio: aspect(width, height),
		},
		renderer: r,
	}, nil
}

func (cs *CameraSystem) Camera() *Camera {
	return cs.camera
}

// SetFOV sets the vertical field of view, clamped to a sane range.
func (cs *CameraSystem) SetFOV(degrees float32) {
	cs.camera.FOVDegrees = math.Clamp(degrees, minFOVDegrees, maxFOVDegrees)
}

// OnResize updates the projection aspect ratio.
func (cs *CameraSystem) OnResize(width, height uint32) {
	cs.camera.aspectRatio = aspect(width, height)
}

// ViewMatrix returns the look-at matrix for the fixed viewpoint.
func (cs *CameraSystem) ViewMatrix() math.Mat4 {
	return math.NewMat4LookAt(cs.camera.Position, cs.camera.Target, cs.camera.Up)
}

// ProjectionMatrix returns the perspective projection for the current
// window aspect ratio.
func (cs *CameraSystem) ProjectionMatrix() math.Mat4 {
	return math.NewMat4Perspective(
		math.DegToRad(cs.camera.FOVDegrees),
		cs.camera.aspectRatio,
		cs.camera.NearClip,
		cs.camera.FarClip,
	)
}

// Apply pushes view, projection and eye position to the shader.
func (cs *CameraSystem) Apply() {
	cs.renderer.SetViewProjection(cs.ViewMatrix(), cs.ProjectionMatrix(), cs.camera.Position)
}

func aspect(width, height uint32) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}
