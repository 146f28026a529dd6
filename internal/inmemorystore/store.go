package inmemorystore

import (
	"context"
	"slices"

	"github.com/vk/prodcat/internal/catalog"
	"github.com/vk/prodcat/internal/product"
)

// Store is a slice-backed catalog.Store.
//
// The slice is append-only: products are immutable and the catalog has no
// update or delete, so insertion order is simply the slice order.
type Store struct {
	products []product.Product
}

// New creates a new, empty in-memory catalog store.
func New() catalog.Store {
	return &Store{}
}

// Add appends a product to the end of the catalog.
func (s *Store) Add(ctx context.Context, p product.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.products = append(s.products, p)
	return nil
}

// List returns a copy of all products in insertion order.
func (s *Store) List(ctx context.Context) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.products), nil
}

// FindByName returns the products whose name matches exactly, ignoring case.
// The result is nil when nothing matches.
func (s *Store) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var matches []product.Product
	for _, p := range s.products {
		if catalog.MatchesName(p, name) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Len reports the number of stored products.
func (s *Store) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(s.products), nil
}
