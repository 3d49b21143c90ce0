package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// fakeBackend records backend calls and hands out sequential handles.
type fakeBackend struct {
	created    []*common.ImageData
	binds      [][2]int // slot, handle
	deleted    []uint32
	nextHandle uint32
	createErr  error
}

func (f *fakeBackend) CreateTexture(img *common.ImageData) (uint32, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, img)
	f.nextHandle++
	return 100 + f.nextHandle, nil
}

func (f *fakeBackend) BindSlot(slot int, handle uint32) {
	f.binds = append(f.binds, [2]int{slot, int(handle)})
}

func (f *fakeBackend) DeleteTextures(handles []uint32) {
	f.deleted = append(f.deleted, handles...)
}

func writeOpaquePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 2, 2))))
	return path
}

func TestLoadAssignsSlotsInOrder(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "a.png"), "first"))
	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "b.png"), "second"))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 0, reg.SlotOf("first"))
	assert.Equal(t, 1, reg.SlotOf("second"))
	assert.Equal(t, 101, reg.HandleOf("first"))
	assert.Equal(t, 102, reg.HandleOf("second"))
}

func TestLoadRejectsUnsupportedChannels(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	err := reg.Load(writeGrayPNG(t, dir, "gray.png"), "gray")
	assert.Error(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, backend.created)
}

func TestLoadRejectsBeyondCapacity(t *testing.T) {
	dir := t.TempDir()
	path := writeOpaquePNG(t, dir, "tex.png")
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	for i := 0; i < MaxTextures; i++ {
		require.NoError(t, reg.Load(path, fmt.Sprintf("tag%d", i)))
	}
	err := reg.Load(path, "overflow")
	assert.Error(t, err)
	assert.Equal(t, MaxTextures, reg.Len())
	assert.Equal(t, -1, reg.SlotOf("overflow"))
}

func TestLoadAllKeepsInputOrderAndSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend, WithDecodeWorkers(2))

	reg.LoadAll([]File{
		{Path: writeOpaquePNG(t, dir, "a.png"), Tag: "a"},
		{Path: filepath.Join(dir, "missing.png"), Tag: "missing"},
		{Path: writeOpaquePNG(t, dir, "b.png"), Tag: "b"},
		{Path: writeOpaquePNG(t, dir, "c.png"), Tag: "c"},
	})

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, 0, reg.SlotOf("a"))
	assert.Equal(t, 1, reg.SlotOf("b"))
	assert.Equal(t, 2, reg.SlotOf("c"))
	assert.Equal(t, -1, reg.SlotOf("missing"))
}

func TestBindAllBindsSlotToHandle(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)
	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "a.png"), "a"))
	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "b.png"), "b"))

	reg.BindAll()
	assert.Equal(t, [][2]int{{0, 101}, {1, 102}}, backend.binds)

	// Binding again rebinds the same pairs.
	reg.BindAll()
	assert.Equal(t, [][2]int{{0, 101}, {1, 102}, {0, 101}, {1, 102}}, backend.binds)
}

func TestLookupMissesReturnNegativeOne(t *testing.T) {
	reg := NewRegistry(&fakeBackend{})
	assert.Equal(t, -1, reg.SlotOf("nope"))
	assert.Equal(t, -1, reg.HandleOf("nope"))
}

func TestDestroyAllDeletesAndEmpties(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)
	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "a.png"), "a"))
	require.NoError(t, reg.Load(writeOpaquePNG(t, dir, "b.png"), "b"))

	reg.DestroyAll()
	assert.Equal(t, []uint32{101, 102}, backend.deleted)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, -1, reg.SlotOf("a"))

	// Empty registry is a no-op.
	reg.DestroyAll()
	assert.Len(t, backend.deleted, 2)
}

func TestUploadFailureLeavesRegistryUnchanged(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{createErr: fmt.Errorf("device lost")}
	reg := NewRegistry(backend)

	err := reg.Load(writeOpaquePNG(t, dir, "a.png"), "a")
	assert.Error(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestNewRegistryRequiresBackend(t *testing.T) {
	assert.Panics(t, func() { NewRegistry(nil) })
}
