package texture

import "github.com/Carmen-Shannon/tableau-go/common"

// Backend abstracts the GPU texture operations the registry depends on, so the
// registry's bookkeeping can be exercised without a live OpenGL context.
type Backend interface {
	// CreateTexture uploads decoded image data as a 2D texture with repeat wrap,
	// linear filtering, and a full mipmap chain, and returns its handle.
	//
	// Parameters:
	//   - img: the decoded image data to upload
	//
	// Returns:
	//   - uint32: the GPU texture handle
	//   - error: error if the upload fails
	CreateTexture(img *common.ImageData) (uint32, error)

	// BindSlot activates the given texture unit and binds the handle to it.
	//
	// Parameters:
	//   - slot: the texture unit index
	//   - handle: the GPU texture handle to bind
	BindSlot(slot int, handle uint32)

	// DeleteTextures releases the given GPU texture handles.
	//
	// Parameters:
	//   - handles: the handles to delete
	DeleteTextures(handles []uint32)
}
