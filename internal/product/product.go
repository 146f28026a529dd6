// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package product

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalid is returned (wrapped) by New when the invariant does not hold.
var ErrInvalid = errors.New("invalid product")

// Product is an immutable catalog entry. Fields are exported for rendering and
// tests; code outside this package must not build a Product literal that
// bypasses New.
type Product struct {
	Category string          `validate:"required"`
	Name     string          `validate:"required"`
	Price    decimal.Decimal `validate:"gt=0"`
}

// New trims category and name and returns a Product if the invariant holds.
func New(category, name string, price decimal.Decimal) (Product, error) {
	p := Product{
		Category: strings.TrimSpace(category),
		Name:     strings.TrimSpace(name),
		Price:    price,
	}
	if err := validate(p); err != nil {
		return Product{}, errors.Wrap(ErrInvalid, err.Error())
	}
	return p, nil
}

// MaxPriceExponent bounds the decimal exponent of a price in both directions.
// Larger exponents would make every rendering of the price enormous.
const MaxPriceExponent = 28

// ParsePrice parses a user supplied price. It accepts what decimal accepts
// (plain or exponent notation) and rejects zero and negative values.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "parse price %q", s)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, errors.Errorf("price %s is not positive", d)
	}
	if e := d.Exponent(); e > MaxPriceExponent || e < -MaxPriceExponent {
		return decimal.Decimal{}, errors.Errorf("price %q is out of range", s)
	}
	return d, nil
}

// String renders the product as a tab separated catalog row.
func (p Product) String() string {
	return p.Category + "\t" + p.Name + "\t" + p.Price.String()
}
