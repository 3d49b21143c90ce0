package texture

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// MaxTextures is the fixed capacity of the registry. Slot indices equal texture unit
// numbers, and 16 units is the portable lower bound for fragment shaders.
const MaxTextures = 16

// File pairs an image file path with the tag it registers under.
type File struct {
	// Path is the filesystem path of the image file.
	Path string
	// Tag is the registry key the loaded texture is addressed by.
	Tag string
}

// entry is one populated slot of the registry table.
type entry struct {
	tag    string
	handle uint32
}

// Registry defines the interface for the scene's texture table: an append-only,
// fixed-capacity, ordered sequence of tagged GPU textures. A texture's slot index is
// its position in load order and is the texture unit it is bound to for the lifetime
// of the scene.
//
// The registry owns every GPU handle it holds and releases them in DestroyAll.
// Lookup misses return -1 so the value can be passed directly to a sampler uniform.
type Registry interface {
	// Load decodes the image at path and registers it under tag. Accepts 3-channel
	// (opaque) and 4-channel (alpha) sources; anything else fails. Failures are
	// logged and leave the registry unchanged.
	//
	// Parameters:
	//   - path: filesystem path of the image file
	//   - tag: the registry key to store the texture under
	//
	// Returns:
	//   - error: error if the image cannot be decoded, has an unsupported channel
	//     count, or the registry is at capacity
	Load(path string, tag string) error

	// LoadAll loads a batch of texture files. Images are decoded concurrently but
	// registered strictly in input order, so slot assignment is deterministic.
	// Individual failures are logged and skipped; the remaining files still load.
	//
	// Parameters:
	//   - files: the image files to load, in slot order
	LoadAll(files []File)

	// BindAll binds every populated entry's handle to the texture unit matching its
	// slot index. Call once after loading and before the first draw; calling it
	// again is idempotent.
	BindAll()

	// SlotOf retrieves the slot index (== texture unit) of the texture registered
	// under tag.
	//
	// Parameters:
	//   - tag: the registry key to look up
	//
	// Returns:
	//   - int: the slot index, or -1 if the tag is not registered
	SlotOf(tag string) int

	// HandleOf retrieves the GPU handle of the texture registered under tag.
	//
	// Parameters:
	//   - tag: the registry key to look up
	//
	// Returns:
	//   - int: the handle, or -1 if the tag is not registered
	HandleOf(tag string) int

	// Len reports the number of textures loaded so far.
	//
	// Returns:
	//   - int: the load counter
	Len() int

	// DestroyAll deletes every GPU texture handle in the table and empties it.
	DestroyAll()
}

// registry is the implementation of the Registry interface.
type registry struct {
	backend       Backend
	entries       [MaxTextures]entry
	loaded        int
	decodeWorkers int
}

// Ensure registry implements Registry interface.
var _ Registry = &registry{}

// NewRegistry creates a texture Registry backed by the given Backend, configured with
// the provided options.
//
// Parameters:
//   - backend: the GPU texture backend (must not be nil)
//   - options: variadic list of RegistryOption functions to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(backend Backend, options ...RegistryOption) Registry {
	if backend == nil {
		panic("texture: NewRegistry requires a non-nil Backend")
	}
	r := &registry{
		backend:       backend,
		decodeWorkers: 4,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *registry) Load(path string, tag string) error {
	img, err := common.DecodeImage(path)
	if err != nil {
		log.Printf("[Texture] could not load image %s: %v", path, err)
		return err
	}
	return r.register(path, tag, img)
}

// register validates decoded image data and appends it to the table. Runs on the
// context-owning thread; the GPU upload happens here.
func (r *registry) register(path string, tag string, img *common.ImageData) error {
	if img.Channels != 3 && img.Channels != 4 {
		err := fmt.Errorf("not implemented to handle image with %d channels", img.Channels)
		log.Printf("[Texture] could not load image %s: %v", path, err)
		return err
	}
	if r.loaded >= MaxTextures {
		err := fmt.Errorf("registry is full (%d textures)", MaxTextures)
		log.Printf("[Texture] could not load image %s: %v", path, err)
		return err
	}

	handle, err := r.backend.CreateTexture(img)
	if err != nil {
		log.Printf("[Texture] could not upload image %s: %v", path, err)
		return err
	}

	r.entries[r.loaded] = entry{tag: tag, handle: handle}
	r.loaded++

	log.Printf("[Texture] loaded image %s, width: %d, height: %d, channels: %d, slot: %d",
		path, img.Width, img.Height, img.Channels, r.loaded-1)
	return nil
}

func (r *registry) LoadAll(files []File) {
	if len(files) == 0 {
		return
	}

	// Decode in parallel on a bounded worker pool, then upload serially in input
	// order so slot index always equals position in the files slice.
	pool := worker.NewDynamicWorkerPool(r.decodeWorkers, max(len(files), 1), time.Second)
	images := make([]*common.ImageData, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		idx := i
		file := f
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				images[idx], errs[idx] = common.DecodeImage(file.Path)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, f := range files {
		if errs[i] != nil {
			log.Printf("[Texture] could not load image %s: %v", f.Path, errs[i])
			continue
		}
		// Errors are already logged; a failed file just leaves its slot unclaimed.
		_ = r.register(f.Path, f.Tag, images[i])
	}
}

func (r *registry) BindAll() {
	for i := 0; i < r.loaded; i++ {
		r.backend.BindSlot(i, r.entries[i].handle)
	}
}

func (r *registry) SlotOf(tag string) int {
	for i := 0; i < r.loaded; i++ {
		if r.entries[i].tag == tag {
			return i
		}
	}
	return -1
}

func (r *registry) HandleOf(tag string) int {
	for i := 0; i < r.loaded; i++ {
		if r.entries[i].tag == tag {
			return int(r.entries[i].handle)
		}
	}
	return -1
}

func (r *registry) Len() int {
	return r.loaded
}

func (r *registry) DestroyAll() {
	if r.loaded == 0 {
		return
	}
	handles := make([]uint32, r.loaded)
	for i := 0; i < r.loaded; i++ {
		handles[i] = r.entries[i].handle
	}
	r.backend.DeleteTextures(handles)
	r.entries = [MaxTextures]entry{}
	r.loaded = 0
}
