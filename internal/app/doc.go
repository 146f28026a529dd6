// Package app wires the catalog together: it builds the logger, loads the
// settings, preloads the store and runs a session, decoupled from any
// specific entrypoint like a CLI.
package app
