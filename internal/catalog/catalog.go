// Package catalog defines the storage contract for a session's products and
// the read-side operations the session performs over them: price ordering,
// totals and name matching.
//
// # Ordering
//
// A Store keeps products in insertion order. Everything that reorders, such
// as SortByPrice, works on a copy, so the insertion order is always available
// to callers that need it (search results are reported in that order).
package catalog

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vk/prodcat/internal/product"
)

// Store holds the products of a single session.
//
// Implementations are not required to be safe for concurrent use; a session
// is driven by one goroutine.
type Store interface {
	// Add appends p. Duplicates are allowed.
	Add(ctx context.Context, p product.Product) error
	// List returns every product in insertion order. The returned slice is
	// owned by the caller.
	List(ctx context.Context) ([]product.Product, error)
	// FindByName returns products whose name equals name, ignoring case,
	// in insertion order.
	FindByName(ctx context.Context, name string) ([]product.Product, error)
	// Len reports how many products are stored.
	Len(ctx context.Context) (int, error)
}

// SortByPrice returns a copy of products ordered by ascending price. Equal
// prices keep their relative order.
func SortByPrice(products []product.Product) []product.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b product.Product) int {
		return a.Price.Cmp(b.Price)
	})
	return sorted
}

// Total sums the prices exactly. An empty slice totals zero.
func Total(products []product.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

// MatchesName reports whether p's name equals name, ignoring case. It is an
// exact match: "App" does not match "Apple".
func MatchesName(p product.Product, name string) bool {
	return strings.EqualFold(p.Name, name)
}
