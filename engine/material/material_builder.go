package material

// RegistryOption is a function that configures a registry instance during construction.
type RegistryOption func(*registry)

// WithMaterials is an option builder that defines an initial set of material records,
// in order.
//
// Parameters:
//   - materials: the records to define
//
// Returns:
//   - RegistryOption: a function that applies the materials option to a registry
func WithMaterials(materials ...Material) RegistryOption {
	return func(r *registry) {
		r.materials = append(r.materials, materials...)
	}
}
