package config

// MergeLocal overlays a project-local config onto the global one.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *Overrides) Config {
	if local == nil {
		return global
	}
	return local.Apply(global)
}
