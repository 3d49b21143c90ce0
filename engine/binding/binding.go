package binding

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/common"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
)

// Uniform names written by the binder. The shader program retains whichever value was
// written last, so every draw must re-set its shading mode and material.
const (
	uniformModel         = "model"
	uniformObjectColor   = "objectColor"
	uniformObjectTexture = "objectTexture"
	uniformUseTexture    = "bUseTexture"
	uniformUVScale       = "UVscale"
)

// Binder defines the interface for the per-draw uniform state protocol between the
// scene composer and the shader. It resolves texture tags to slots and material tags
// to Phong parameters, and guarantees that the color and texture shading modes are
// mutually exclusive: SetShaderColor always leaves bUseTexture false, SetShaderTexture
// always leaves it true.
type Binder interface {
	// SetTransformations composes scale, Euler rotation (degrees), and translation
	// into a model matrix (T * Rx * Ry * Rz * S) and publishes it under the `model`
	// uniform.
	//
	// Parameters:
	//   - scale: scale factors along each axis
	//   - xDeg, yDeg, zDeg: rotation angles in degrees around the world X, Y, Z axes
	//   - position: translation in world space
	SetTransformations(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3)

	// SetShaderColor selects solid-color shading for the next draw.
	//
	// Parameters:
	//   - r, g, b, a: the object color components
	SetShaderColor(r, g, b, a float32)

	// SetShaderTexture selects textured shading for the next draw, pointing the
	// sampler at the slot registered under tag. An unknown tag writes slot -1,
	// which the shader treats as "no texture".
	//
	// Parameters:
	//   - tag: the texture registry key
	SetShaderTexture(tag string)

	// SetTextureUVScale sets the texture coordinate scale for the next draw.
	//
	// Parameters:
	//   - u, v: the UV scale factors
	SetTextureUVScale(u, v float32)

	// SetShaderMaterial writes the Phong parameters of the material registered under
	// tag into the shader's material sub-uniforms. A miss is a silent no-op: the
	// shader keeps the previously set material.
	//
	// Parameters:
	//   - tag: the material registry key
	SetShaderMaterial(tag string)
}

// binder is the implementation of the Binder interface.
type binder struct {
	sh        shader.Shader
	textures  texture.Registry
	materials material.Registry
}

// Ensure binder implements Binder interface.
var _ Binder = &binder{}

// NewBinder creates a Binder over the given shader and registries. All three are
// required and NewBinder panics if any of them is nil.
//
// Parameters:
//   - sh: the shader whose uniforms are written (must not be nil)
//   - textures: the texture registry used for tag-to-slot resolution (must not be nil)
//   - materials: the material registry used for tag lookup (must not be nil)
//
// Returns:
//   - Binder: the newly created binder
func NewBinder(sh shader.Shader, textures texture.Registry, materials material.Registry) Binder {
	if sh == nil {
		panic("binding: NewBinder requires a non-nil Shader")
	}
	if textures == nil {
		panic("binding: NewBinder requires a non-nil texture Registry")
	}
	if materials == nil {
		panic("binding: NewBinder requires a non-nil material Registry")
	}
	return &binder{
		sh:        sh,
		textures:  textures,
		materials: materials,
	}
}

func (b *binder) SetTransformations(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3) {
	model := common.BuildModelMatrix(scale, xDeg, yDeg, zDeg, position)
	b.sh.SetMat4Value(uniformModel, model)
}

func (b *binder) SetShaderColor(r, g, b2, a float32) {
	b.sh.SetBoolValue(uniformUseTexture, false)
	b.sh.SetVec4Value(uniformObjectColor, mgl32.Vec4{r, g, b2, a})
}

func (b *binder) SetShaderTexture(tag string) {
	b.sh.SetBoolValue(uniformUseTexture, true)
	b.sh.SetSampler2DValue(uniformObjectTexture, int32(b.textures.SlotOf(tag)))
}

func (b *binder) SetTextureUVScale(u, v float32) {
	b.sh.SetVec2Value(uniformUVScale, mgl32.Vec2{u, v})
}

func (b *binder) SetShaderMaterial(tag string) {
	if b.materials.Len() == 0 {
		return
	}
	m, found := b.materials.Find(tag)
	if !found {
		return
	}
	b.sh.SetVec3Value("material.ambientColor", m.AmbientColor)
	b.sh.SetFloatValue("material.ambientStrength", m.AmbientStrength)
	b.sh.SetVec3Value("material.diffuseColor", m.DiffuseColor)
	b.sh.SetVec3Value("material.specularColor", m.SpecularColor)
	b.sh.SetFloatValue("material.shininess", m.Shininess)
}
