package binding

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/tableau-go/common"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
)

type stubBackend struct {
	next uint32
}

func (s *stubBackend) CreateTexture(img *common.ImageData) (uint32, error) {
	s.next++
	return s.next, nil
}

func (s *stubBackend) BindSlot(slot int, handle uint32) {}

func (s *stubBackend) DeleteTextures(handles []uint32) {}

func loadedTextures(t *testing.T, tags ...string) texture.Registry {
	t.Helper()
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	reg := texture.NewRegistry(&stubBackend{})
	for _, tag := range tags {
		require.NoError(t, reg.Load(path, tag))
	}
	return reg
}

func newTestBinder(t *testing.T, tags ...string) (Binder, *shader.Recorder, material.Registry) {
	t.Helper()
	rec := shader.NewRecorder()
	materials := material.NewRegistry()
	return NewBinder(rec, loadedTextures(t, tags...), materials), rec, materials
}

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	b, rec, _ := newTestBinder(t)

	b.SetShaderColor(0.75, 0.5, 0.25, 1.0)

	useTexture, ok := rec.Value("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, false, useTexture)

	objectColor, ok := rec.Value("objectColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0.75, 0.5, 0.25, 1.0}, objectColor)
}

func TestSetShaderTextureEnablesTexturing(t *testing.T) {
	b, rec, _ := newTestBinder(t, "table", "cheese_wheel_side")

	b.SetShaderTexture("cheese_wheel_side")

	useTexture, ok := rec.Value("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, true, useTexture)

	sampler, ok := rec.Value("objectTexture")
	require.True(t, ok)
	assert.Equal(t, int32(1), sampler)
}

func TestSetShaderTextureUnknownTagWritesNegativeSlot(t *testing.T) {
	b, rec, _ := newTestBinder(t, "table")

	b.SetShaderTexture("marble")

	useTexture, _ := rec.Value("bUseTexture")
	assert.Equal(t, true, useTexture)
	sampler, ok := rec.Value("objectTexture")
	require.True(t, ok)
	assert.Equal(t, int32(-1), sampler)
}

func TestShadingModesAreMutuallyExclusive(t *testing.T) {
	b, rec, _ := newTestBinder(t, "table")

	b.SetShaderTexture("table")
	b.SetShaderColor(1, 0, 0, 1)
	useTexture, _ := rec.Value("bUseTexture")
	assert.Equal(t, false, useTexture)

	b.SetShaderTexture("table")
	useTexture, _ = rec.Value("bUseTexture")
	assert.Equal(t, true, useTexture)
}

func TestSetTextureUVScale(t *testing.T) {
	b, rec, _ := newTestBinder(t)

	b.SetTextureUVScale(5, 1)

	uv, ok := rec.Value("UVscale")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{5, 1}, uv)
}

func TestSetShaderMaterialWritesPhongParameters(t *testing.T) {
	b, rec, materials := newTestBinder(t)
	materials.Define(material.Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.3,
	})

	b.SetShaderMaterial("wood")

	ambient, ok := rec.Value("material.ambientColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, ambient)
	shininess, ok := rec.Value("material.shininess")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), shininess)
}

func TestSetShaderMaterialMissIsSilent(t *testing.T) {
	b, rec, materials := newTestBinder(t)

	// Empty registry: nothing written.
	b.SetShaderMaterial("wood")
	_, ok := rec.Value("material.ambientColor")
	assert.False(t, ok)

	// Unknown tag: previous material stays in place.
	materials.Define(material.Material{Tag: "wood", Shininess: 0.3})
	b.SetShaderMaterial("wood")
	b.SetShaderMaterial("marble")
	shininess, ok := rec.Value("material.shininess")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), shininess)
}

func TestSetTransformationsPublishesModelMatrix(t *testing.T) {
	b, rec, _ := newTestBinder(t)

	scale := mgl32.Vec3{20, 0.6, 8}
	position := mgl32.Vec3{0, 0.2, -0.9}
	b.SetTransformations(scale, 0, -12, 0, position)

	model, ok := rec.Value("model")
	require.True(t, ok)
	assert.Equal(t, common.BuildModelMatrix(scale, 0, -12, 0, position), model)
}

func TestNewBinderRequiresDependencies(t *testing.T) {
	rec := shader.NewRecorder()
	textures := loadedTextures(t)
	materials := material.NewRegistry()

	assert.Panics(t, func() { NewBinder(nil, textures, materials) })
	assert.Panics(t, func() { NewBinder(rec, nil, materials) })
	assert.Panics(t, func() { NewBinder(rec, textures, nil) })
}
