package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/tableau-go/engine/shader"
)

func TestDefaultCamera(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 5, 14}, c.Position())
	assert.Equal(t,
		mgl32.LookAtV(mgl32.Vec3{0, 5, 14}, mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 1, 0}),
		c.ViewMatrix())
	assert.Equal(t,
		mgl32.Perspective(mgl32.DegToRad(45), 1.25, 0.1, 100),
		c.ProjectionMatrix(1.25))
}

func TestApplyWritesCameraUniforms(t *testing.T) {
	c := NewCamera(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithFov(60),
		WithClipPlanes(0.5, 50),
	)
	rec := shader.NewRecorder()
	c.Apply(rec, 2)

	view, ok := rec.Value("view")
	require.True(t, ok)
	assert.Equal(t, mgl32.LookAtV(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}), view)

	projection, ok := rec.Value("projection")
	require.True(t, ok)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 2, 0.5, 50), projection)

	pos, ok := rec.Value("viewPosition")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, pos)
}

func TestOptionGuards(t *testing.T) {
	c := NewCamera(WithFov(0), WithClipPlanes(0, 0))
	assert.Equal(t,
		mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100),
		c.ProjectionMatrix(1))
}
