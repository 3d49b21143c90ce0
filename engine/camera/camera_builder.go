package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraOption is a functional option for configuring a Camera.
// Use the With* functions to create options that are applied during NewCamera.
type CameraOption func(*camera)

// WithPosition sets the camera's eye position in world space.
//
// Parameters:
//   - position: the eye position
//
// Returns:
//   - CameraOption: option function to apply
func WithPosition(position mgl32.Vec3) CameraOption {
	return func(c *camera) {
		c.position = position
	}
}

// WithTarget sets the point the camera looks at.
//
// Parameters:
//   - target: the look-at target in world space
//
// Returns:
//   - CameraOption: option function to apply
func WithTarget(target mgl32.Vec3) CameraOption {
	return func(c *camera) {
		c.target = target
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraOption: option function to apply
func WithUp(up mgl32.Vec3) CameraOption {
	return func(c *camera) {
		c.up = up
	}
}

// WithFov sets the vertical field of view in degrees. Values <= 0 keep the default.
//
// Parameters:
//   - degrees: the field of view in degrees
//
// Returns:
//   - CameraOption: option function to apply
func WithFov(degrees float32) CameraOption {
	return func(c *camera) {
		if degrees > 0 {
			c.fovDeg = degrees
		}
	}
}

// WithClipPlanes sets the near and far clipping plane distances. Non-positive values
// keep the defaults.
//
// Parameters:
//   - near: the near plane distance
//   - far: the far plane distance
//
// Returns:
//   - CameraOption: option function to apply
func WithClipPlanes(near, far float32) CameraOption {
	return func(c *camera) {
		if near > 0 {
			c.near = near
		}
		if far > 0 {
			c.far = far
		}
	}
}
