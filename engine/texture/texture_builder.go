package texture

// RegistryOption is a function that configures a registry instance during construction.
type RegistryOption func(*registry)

// WithDecodeWorkers is an option builder that sets the number of concurrent image
// decode workers used by LoadAll. Values below 1 are clamped to 1 (serial decode).
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - RegistryOption: a function that applies the decode worker option to a registry
func WithDecodeWorkers(workers int) RegistryOption {
	return func(r *registry) {
		r.decodeWorkers = max(workers, 1)
	}
}
