package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/engine/shader"
)

// Camera defines the interface for the scene's fixed viewpoint. The camera holds
// perspective settings and a static eye/target pair, computes the view and projection
// matrices, and pushes them into the shader each frame via Apply.
type Camera interface {
	// Position returns the camera's eye position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// ViewMatrix returns the view matrix looking from the eye position at the target.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix for the given
	// aspect ratio.
	//
	// Parameters:
	//   - aspect: the viewport aspect ratio (width / height)
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix(aspect float32) mgl32.Mat4

	// Apply writes the view, projection, and viewPosition uniforms into the shader.
	// Call once per frame before the scene draws.
	//
	// Parameters:
	//   - sh: the shader to write camera uniforms into
	//   - aspect: the viewport aspect ratio (width / height)
	Apply(sh shader.Shader, aspect float32)
}

// camera is the implementation of the Camera interface.
type camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fovDeg float32
	near   float32
	far    float32
}

// Ensure camera implements Camera interface.
var _ Camera = &camera{}

// NewCamera creates a Camera configured with the provided options. Without options
// the camera sits slightly above the table looking down its center, with a 45 degree
// field of view.
//
// Parameters:
//   - options: variadic list of CameraOption functions to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraOption) Camera {
	c := &camera{
		position: mgl32.Vec3{0.0, 5.0, 14.0},
		target:   mgl32.Vec3{0.0, 3.0, 0.0},
		up:       mgl32.Vec3{0.0, 1.0, 0.0},
		fovDeg:   45.0,
		near:     0.1,
		far:      100.0,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

func (c *camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fovDeg), aspect, c.near, c.far)
}

func (c *camera) Apply(sh shader.Shader, aspect float32) {
	sh.SetMat4Value("view", c.ViewMatrix())
	sh.SetMat4Value("projection", c.ProjectionMatrix(aspect))
	sh.SetVec3Value("viewPosition", c.position)
}
