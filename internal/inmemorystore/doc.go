// Package inmemorystore provides an ephemeral, in-memory implementation of
// the catalog.Store interface. Products live for the lifetime of the process
// and are never written anywhere.
package inmemorystore
