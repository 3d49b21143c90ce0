package light

// RigOption is a function that configures a rig instance during construction.
type RigOption func(*rig)

// WithSources is an option builder that replaces the rig's light sources. Order
// matters: a source's index in the slice is its slot in the shader's light array.
//
// Parameters:
//   - sources: the light sources, in shader slot order
//
// Returns:
//   - RigOption: a function that applies the sources option to a rig
func WithSources(sources ...Source) RigOption {
	return func(r *rig) {
		r.sources = sources
	}
}
