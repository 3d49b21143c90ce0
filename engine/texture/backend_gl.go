package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// glBackend is the OpenGL implementation of the Backend interface.
// All methods must be called on the thread owning the GL context.
type glBackend struct{}

// Ensure glBackend implements Backend interface.
var _ Backend = glBackend{}

// NewGLBackend creates the OpenGL texture backend.
//
// Returns:
//   - Backend: the OpenGL-backed texture backend
func NewGLBackend() Backend {
	return glBackend{}
}

func (glBackend) CreateTexture(img *common.ImageData) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture image has no pixel data")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Pixels are always staged as RGBA; the internal format still distinguishes
	// opaque sources so 3-channel images don't pay for an alpha channel.
	internalFormat := int32(gl.RGBA8)
	if img.Channels == 3 {
		internalFormat = gl.RGB8
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle, nil
}

func (glBackend) BindSlot(slot int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (glBackend) DeleteTextures(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
