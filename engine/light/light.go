package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/engine/shader"
)

// Source describes one light source slot of the shader's indexed light array.
// Sources are pushed to the shader once at scene preparation and never stored
// client-side afterwards.
type Source struct {
	// Position is the light's position in world space.
	Position mgl32.Vec3
	// AmbientColor is the ambient contribution color (RGB).
	AmbientColor mgl32.Vec3
	// DiffuseColor is the diffuse contribution color (RGB).
	DiffuseColor mgl32.Vec3
	// SpecularColor is the specular contribution color (RGB).
	SpecularColor mgl32.Vec3
	// FocalStrength controls the specular falloff of the source.
	FocalStrength float32
	// SpecularIntensity scales the specular contribution of the source.
	SpecularIntensity float32
}

// DefaultSources returns the still-life's fixed three-light setup: a warm overhead
// key light, a cool fill from the opposite side, and a broad ambient wash simulating
// bounced daylight.
//
// Returns:
//   - []Source: the three light sources, in shader slot order
func DefaultSources() []Source {
	return []Source{
		{
			Position:          mgl32.Vec3{-2.0, 8.0, 6.0},
			AmbientColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			DiffuseColor:      mgl32.Vec3{1.2, 1.2, 1.0},
			SpecularColor:     mgl32.Vec3{0.8, 0.8, 0.8},
			FocalStrength:     16.0,
			SpecularIntensity: 0.6,
		},
		{
			Position:          mgl32.Vec3{4.0, 6.0, 8.0},
			AmbientColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			DiffuseColor:      mgl32.Vec3{0.8, 0.8, 0.9},
			SpecularColor:     mgl32.Vec3{0.5, 0.5, 0.6},
			FocalStrength:     20.0,
			SpecularIntensity: 0.4,
		},
		{
			Position:          mgl32.Vec3{0.0, 10.0, 15.0},
			AmbientColor:      mgl32.Vec3{0.8, 0.8, 0.8},
			DiffuseColor:      mgl32.Vec3{2.0, 2.0, 1.8},
			SpecularColor:     mgl32.Vec3{0.3, 0.3, 0.3},
			FocalStrength:     8.0,
			SpecularIntensity: 0.3,
		},
	}
}

// Rig defines the interface for the scene's fixed lighting configuration. A rig owns
// nothing persistent: Apply pushes its sources into the shader's indexed light array
// and toggles the lighting flag, and that is the rig's whole job.
type Rig interface {
	// Sources retrieves the rig's light sources in shader slot order.
	//
	// Returns:
	//   - []Source: the configured light sources
	Sources() []Source

	// Apply enables lighting in the shader and writes every source's parameters into
	// the shader's lightSources array, indexed by position.
	//
	// Parameters:
	//   - sh: the shader to write light uniforms into
	Apply(sh shader.Shader)
}

// rig is the implementation of the Rig interface.
type rig struct {
	sources []Source
}

// Ensure rig implements Rig interface.
var _ Rig = &rig{}

// NewRig creates a light Rig configured with the provided options. Without options
// the rig carries the still-life's default three sources.
//
// Parameters:
//   - options: variadic list of RigOption functions to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rig{sources: DefaultSources()}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *rig) Sources() []Source {
	return r.sources
}

func (r *rig) Apply(sh shader.Shader) {
	sh.SetBoolValue("bUseLighting", true)

	for i, src := range r.sources {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		sh.SetVec3Value(prefix+".position", src.Position)
		sh.SetVec3Value(prefix+".ambientColor", src.AmbientColor)
		sh.SetVec3Value(prefix+".diffuseColor", src.DiffuseColor)
		sh.SetVec3Value(prefix+".specularColor", src.SpecularColor)
		sh.SetFloatValue(prefix+".focalStrength", src.FocalStrength)
		sh.SetFloatValue(prefix+".specularIntensity", src.SpecularIntensity)
	}
}
