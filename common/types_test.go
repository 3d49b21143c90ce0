package common

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDecodeImageFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top row red
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255}) // bottom row blue
	path := filepath.Join(t.TempDir(), "flip.png")
	writeTestPNG(t, path, img)

	data, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Width)
	assert.Equal(t, 2, data.Height)
	// First staged row is the bottom of the source image.
	assert.Equal(t, []byte{0, 0, 255, 255}, data.Pixels[:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, data.Pixels[4:8])
}

func TestDecodeImageChannelDetection(t *testing.T) {
	dir := t.TempDir()

	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			opaque.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	opaquePath := filepath.Join(dir, "opaque.png")
	writeTestPNG(t, opaquePath, opaque)

	translucent := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	translucentPath := filepath.Join(dir, "translucent.png")
	writeTestPNG(t, translucentPath, translucent)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	grayPath := filepath.Join(dir, "gray.png")
	writeTestPNG(t, grayPath, gray)

	data, err := DecodeImage(opaquePath)
	assert.NoError(t, err)
	assert.Equal(t, 3, data.Channels)
	assert.Len(t, data.Pixels, 2*2*4)

	data, err = DecodeImage(translucentPath)
	assert.NoError(t, err)
	assert.Equal(t, 4, data.Channels)

	data, err = DecodeImage(grayPath)
	assert.NoError(t, err)
	assert.Equal(t, 1, data.Channels)
}

func TestDecodeImageMissingFile(t *testing.T) {
	_, err := DecodeImage(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
