package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsLastWrite(t *testing.T) {
	rec := NewRecorder()
	rec.SetBoolValue("bUseTexture", true)
	rec.SetBoolValue("bUseTexture", false)

	v, ok := rec.Value("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = rec.Value("never")
	assert.False(t, ok)
}

func TestRecorderStoresTypedValues(t *testing.T) {
	rec := NewRecorder()
	rec.SetIntValue("count", 3)
	rec.SetFloatValue("shininess", 85)
	rec.SetVec2Value("UVscale", mgl32.Vec2{5, 1})
	rec.SetVec3Value("viewPosition", mgl32.Vec3{0, 5, 14})
	rec.SetVec4Value("objectColor", mgl32.Vec4{1, 0, 0, 1})
	rec.SetMat4Value("model", mgl32.Ident4())
	rec.SetSampler2DValue("objectTexture", 2)

	v, _ := rec.Value("count")
	assert.Equal(t, int32(3), v)
	v, _ = rec.Value("UVscale")
	assert.Equal(t, mgl32.Vec2{5, 1}, v)
	v, _ = rec.Value("model")
	assert.Equal(t, mgl32.Ident4(), v)
	v, _ = rec.Value("objectTexture")
	assert.Equal(t, int32(2), v)
}

func TestRecorderSnapshotIsDetached(t *testing.T) {
	rec := NewRecorder()
	rec.SetFloatValue("shininess", 22)

	snap := rec.Snapshot()
	rec.SetFloatValue("shininess", 99)

	assert.Equal(t, float32(22), snap["shininess"])
	v, _ := rec.Value("shininess")
	assert.Equal(t, float32(99), v)
}

func TestRecorderReleaseClearsState(t *testing.T) {
	rec := NewRecorder()
	rec.SetFloatValue("shininess", 22)
	rec.Release()

	_, ok := rec.Value("shininess")
	assert.False(t, ok)
}
