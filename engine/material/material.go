package material

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong reflectance parameters applied uniformly across a surface.
// Records are immutable once defined.
type Material struct {
	// Tag is the registry key the material is addressed by.
	Tag string
	// AmbientColor is the ambient reflectance color (RGB in [0,1]).
	AmbientColor mgl32.Vec3
	// AmbientStrength scales the ambient contribution. Non-negative.
	AmbientStrength float32
	// DiffuseColor is the diffuse reflectance color (RGB).
	DiffuseColor mgl32.Vec3
	// SpecularColor is the specular reflectance color (RGB).
	SpecularColor mgl32.Vec3
	// Shininess is the specular exponent. Non-negative.
	Shininess float32
}

// Registry defines the interface for the scene's material table: an ordered sequence
// of named Phong material records. Definitions are append-only; when two records
// share a tag, lookup returns the first one defined.
type Registry interface {
	// Define appends a material record. No duplicate-tag check is performed.
	//
	// Parameters:
	//   - m: the material record to append
	Define(m Material)

	// Find retrieves the first material defined under tag.
	//
	// Parameters:
	//   - tag: the registry key to look up
	//
	// Returns:
	//   - Material: the matching record, or the zero record when not found
	//   - bool: true if a record with the tag exists
	Find(tag string) (Material, bool)

	// Len reports the number of defined materials.
	//
	// Returns:
	//   - int: the record count
	Len() int
}

// registry is the implementation of the Registry interface.
type registry struct {
	materials []Material
}

// Ensure registry implements Registry interface.
var _ Registry = &registry{}

// NewRegistry creates a material Registry configured with the provided options.
//
// Parameters:
//   - options: variadic list of RegistryOption functions to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryOption) Registry {
	r := &registry{}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *registry) Define(m Material) {
	r.materials = append(r.materials, m)
}

func (r *registry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *registry) Len() int {
	return len(r.materials)
}
