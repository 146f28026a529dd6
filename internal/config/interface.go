package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads every settings file found under paths, merges them over
	// Default() and returns the validated result. Paths that do not exist
	// are skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
