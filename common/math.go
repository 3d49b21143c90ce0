package common

import "github.com/go-gl/mathgl/mgl32"

// BuildModelMatrix constructs a 4x4 model matrix from scale, Euler rotation, and
// translation. The composition order is T * Rx * Ry * Rz * S: the scale is applied
// first, then the rotations about the world X, Y, and Z axes in that order, then the
// translation. Rotation angles are given in degrees.
//
// Zero scale components produce a degenerate (flattened) mesh and negative scale
// components mirror the mesh; both are valid inputs.
//
// Parameters:
//   - scale: scale factors along each axis
//   - xDeg, yDeg, zDeg: rotation angles in degrees around the world X, Y, Z axes
//   - position: translation in world space
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func BuildModelMatrix(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(xDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDeg))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
