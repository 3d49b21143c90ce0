// package common contains common types that are used throughout this renderer. They are
// not interface-wrapped structs, just plain structs that express commonly used data-types.
package common

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ImageData holds decoded pixel data for a texture pending GPU upload.
// Pixels are always stored as RGBA (4 bytes per pixel, row-major), with the first row
// at the BOTTOM of the image so that texture coordinate (0,0) maps to the lower-left
// corner. Channels records the channel count of the SOURCE image (3 for opaque images,
// 4 for images carrying alpha) so callers can reject unsupported formats and pick the
// matching GPU internal format.
type ImageData struct {
	// Pixels is the raw RGBA pixel data, vertically flipped (bottom row first).
	Pixels []byte
	// Width is the width of the image in pixels.
	Width int
	// Height is the height of the image in pixels.
	Height int
	// Channels is the channel count of the source image (1, 3, or 4).
	Channels int
}

// DecodeImage reads and decodes the image file at path into RGBA pixel data with a
// vertical flip applied. Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: filesystem path of the image to decode
//
// Returns:
//   - *ImageData: the decoded, flipped pixel data
//   - error: error if the file cannot be opened or decoded
func DecodeImage(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := &ImageData{
		Pixels:   make([]byte, width*height*4),
		Width:    width,
		Height:   height,
		Channels: sourceChannels(img),
	}

	// Convert to RGBA row by row, writing rows bottom-up so the first row of Pixels
	// is the bottom of the image (lower-left texture origin).
	for y := 0; y < height; y++ {
		dst := data.Pixels[(height-1-y)*width*4:]
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			dst[x*4+0] = byte(r >> 8)
			dst[x*4+1] = byte(g >> 8)
			dst[x*4+2] = byte(b >> 8)
			dst[x*4+3] = byte(a >> 8)
		}
	}

	return data, nil
}

// sourceChannels reports the channel count of the source image: 1 for grayscale,
// 3 for opaque color, 4 for color with alpha.
func sourceChannels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return 3
	}
	return 4
}
