package scene

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/engine/binding"
	"github.com/Carmen-Shannon/tableau-go/engine/light"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
)

// DefaultTextureDir is the image directory the scene loads from, relative to the
// process working directory.
const DefaultTextureDir = "../../Utilities/textures"

// Composer defines the interface for the still-life scene: a fixed set of object
// renderers over shared primitive meshes, globally bound textures and lights, and a
// per-draw uniform binding protocol.
//
// Lifecycle: construct, PrepareScene once, RenderScene once per frame after the
// camera's view and projection uniforms are uploaded, Release at teardown. No
// re-entry: a released composer is not prepared again.
type Composer interface {
	// PrepareScene loads the scene's textures, binds them to their texture units,
	// defines the object materials, applies the light rig, and builds every
	// primitive mesh the object renderers reference. Texture load failures are
	// logged and skipped; the scene renders with whatever textures succeeded.
	PrepareScene()

	// RenderScene draws the six scene objects in a fixed order: Table, Backdrop,
	// CheeseWheel, Book, WineGlass, WineBottle. Opaque objects come first and the
	// translucent glass pieces last, so alpha blending composes correct
	// silhouettes over an ordinary depth buffer.
	RenderScene()

	// Release frees every GPU resource the scene owns: texture handles and
	// primitive mesh buffers.
	Release()
}

// composer is the implementation of the Composer interface.
type composer struct {
	sh         shader.Shader
	binder     binding.Binder
	meshes     mesh.Meshes
	textures   texture.Registry
	materials  material.Registry
	rig        light.Rig
	textureDir string
}

// Ensure composer implements Composer interface.
var _ Composer = &composer{}

// NewComposer creates the still-life Composer over the given collaborators. All of
// them are required and NewComposer panics if any is nil.
//
// Parameters:
//   - sh: the shader program uniforms are bound to (must not be nil)
//   - meshes: the primitive mesh library (must not be nil)
//   - textures: the texture registry (must not be nil)
//   - materials: the material registry (must not be nil)
//   - rig: the light rig (must not be nil)
//   - options: functional options to further configure the composer
//
// Returns:
//   - Composer: the newly created composer
func NewComposer(
	sh shader.Shader,
	meshes mesh.Meshes,
	textures texture.Registry,
	materials material.Registry,
	rig light.Rig,
	options ...ComposerOption,
) Composer {
	if sh == nil {
		panic("scene: NewComposer requires a non-nil Shader")
	}
	if meshes == nil {
		panic("scene: NewComposer requires a non-nil Meshes")
	}
	if textures == nil {
		panic("scene: NewComposer requires a non-nil texture Registry")
	}
	if materials == nil {
		panic("scene: NewComposer requires a non-nil material Registry")
	}
	if rig == nil {
		panic("scene: NewComposer requires a non-nil light Rig")
	}

	c := &composer{
		sh:         sh,
		meshes:     meshes,
		textures:   textures,
		materials:  materials,
		rig:        rig,
		textureDir: DefaultTextureDir,
	}
	for _, option := range options {
		option(c)
	}

	c.binder = binding.NewBinder(sh, textures, materials)
	return c
}

// sceneTextureFiles lists the nine scene textures in slot order. The scene samples
// five of them; the rest are loaded for parity with the authored asset set and cost
// nothing beyond their slots.
func sceneTextureFiles(dir string) []texture.File {
	return []texture.File{
		{Path: filepath.Join(dir, "rusticwood.jpg"), Tag: "table"},
		{Path: filepath.Join(dir, "cheese_wheel.jpg"), Tag: "cheese_wheel_side"},
		{Path: filepath.Join(dir, "cheese_top.jpg"), Tag: "cheese_wheel_top"},
		{Path: filepath.Join(dir, "breadcrust.jpg"), Tag: "breadcrust"},
		{Path: filepath.Join(dir, "backdrop.jpg"), Tag: "backdrop"},
		{Path: filepath.Join(dir, "knife_handle.jpg"), Tag: "knifehandle"},
		{Path: filepath.Join(dir, "stainless.jpg"), Tag: "stainless"},
		{Path: filepath.Join(dir, "cheddar.jpg"), Tag: "cheddar"},
		{Path: filepath.Join(dir, "circular-brushed-gold-texture.jpg"), Tag: "knifescrew"},
	}
}

// sceneMaterials lists the five object materials, in definition order.
func sceneMaterials() []material.Material {
	return []material.Material{
		{
			Tag:             "metal",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess:       22.0,
		},
		{
			Tag:             "wood",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       0.3,
		},
		{
			Tag:             "glass",
			AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
			Shininess:       85.0,
		},
		{
			Tag:             "cheese",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       0.3,
		},
		{
			Tag:             "backdrop",
			AmbientColor:    mgl32.Vec3{0.6, 0.6, 0.6},
			AmbientStrength: 3.0,
			DiffuseColor:    mgl32.Vec3{0.6, 0.5, 0.1},
			SpecularColor:   mgl32.Vec3{0.0, 0.0, 0.0},
			Shininess:       0.0,
		},
	}
}

func (c *composer) PrepareScene() {
	c.textures.LoadAll(sceneTextureFiles(c.textureDir))
	c.textures.BindAll()

	for _, m := range sceneMaterials() {
		c.materials.Define(m)
	}

	c.rig.Apply(c.sh)

	// One shared vertex buffer per primitive, no matter how many times it is drawn.
	c.meshes.LoadBoxMesh()
	c.meshes.LoadPlaneMesh()
	c.meshes.LoadCylinderMesh()
	c.meshes.LoadConeMesh()
	c.meshes.LoadPrismMesh()
	c.meshes.LoadPyramid4Mesh()
	c.meshes.LoadSphereMesh()
	c.meshes.LoadTaperedCylinderMesh()
	c.meshes.LoadTorusMesh()
}

func (c *composer) RenderScene() {
	c.renderTable()
	c.renderBackdrop()
	c.renderCheeseWheel()
	c.renderBook()
	c.renderWineGlass()
	c.renderWineBottle()
}

func (c *composer) Release() {
	c.textures.DestroyAll()
	c.meshes.Release()
}
