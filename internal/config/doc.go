// Package config defines the format-agnostic session settings model and the
// Loader interface that fills it from configuration files.
//
// The Model is the single source of truth for the session's command tokens,
// display behaviour and seed products. Concrete loaders, such as the HCL one,
// live in separate packages and only translate into this model.
package config
