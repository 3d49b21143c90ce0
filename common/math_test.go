package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBuildModelMatrixIdentity(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	assert.Equal(t, mgl32.Ident4(), m)
}

func TestBuildModelMatrixScaleBeforeRotation(t *testing.T) {
	// With T*R*S composition, a unit X point is scaled to (2,0,0) first and then
	// rotated 90 degrees about Z onto the Y axis. The reverse order would land on
	// (0,1,0) instead.
	m := BuildModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 0, 90, mgl32.Vec3{0, 0, 0})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}

func TestBuildModelMatrixRotationOrderXThenY(t *testing.T) {
	// Rx*Ry applied to a unit X point: Ry(90) takes it to (0,0,-1), then Rx(90)
	// takes it to (0,1,0). The swapped order would yield (0,0,-1).
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, 90, 90, 0, mgl32.Vec3{0, 0, 0})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 1, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}

func TestBuildModelMatrixTranslationLast(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{5, 6, 7})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 5, p.X(), 1e-5)
	assert.InDelta(t, 6, p.Y(), 1e-5)
	assert.InDelta(t, 7-1, p.Z(), 1e-5)
}

func TestBuildModelMatrixFullTurnMatchesZero(t *testing.T) {
	zero := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, 0, 0, 0, mgl32.Vec3{1, 1, 1})
	full := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, 360, 360, 360, mgl32.Vec3{1, 1, 1})
	for i := range zero {
		assert.InDelta(t, zero[i], full[i], 1e-4)
	}
}

func TestBuildModelMatrixDegenerateScales(t *testing.T) {
	// Zero scale flattens, negative scale mirrors; neither is an error.
	flat := BuildModelMatrix(mgl32.Vec3{1, 0, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	p := flat.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, 0, p.Y(), 1e-6)

	mirror := BuildModelMatrix(mgl32.Vec3{-1, 1, 1}, 0, 0, 0, mgl32.Vec3{0, 0, 0})
	p = mirror.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, -1, p.X(), 1e-6)
}
