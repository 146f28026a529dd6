// Package csvimport reads products from a CSV file with the header
// `category,name,price`. Every row is validated exactly like an interactive
// add; the first invalid row aborts the import.
package csvimport

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/gocarina/gocsv"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/product"
)

// row is the CSV shape. Price is kept as text so it never passes through a
// float.
type row struct {
	Category string `csv:"category"`
	Name     string `csv:"name"`
	Price    string `csv:"price"`
}

// Read parses products from r.
func Read(ctx context.Context, r io.Reader) ([]product.Product, error) {
	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}

	products := make([]product.Product, 0, len(rows))
	for i, rw := range rows {
		// Row 1 is the header.
		line := i + 2

		price, err := product.ParsePrice(rw.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		p, err := product.New(rw.Category, rw.Name, price)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		products = append(products, p)
	}

	ctxlog.FromContext(ctx).Debug("CSV import parsed.", "products", len(products))
	return products, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(ctx context.Context, path string) ([]product.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open import file")
	}
	defer f.Close()

	products, err := Read(ctx, f)
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", path)
	}
	return products, nil
}
