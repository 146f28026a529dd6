package hcl

import (
	"github.com/go-faster/errors"
	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"
	"github.com/vk/prodcat/internal/product"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// decodePrice evaluates a price expression. Numbers and strings are both
// accepted; numbers go through their exact decimal text so no binary
// rounding is introduced.
func decodePrice(expr hcl.Expression) (decimal.Decimal, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Decimal{}, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return decimal.Decimal{}, errors.New("price must be set")
	}

	if !val.Type().Equals(cty.Number) && !val.Type().Equals(cty.String) {
		return decimal.Decimal{}, errors.Errorf("price must be a number or a string, got %s", val.Type().FriendlyName())
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "convert price")
	}
	return product.ParsePrice(str.AsString())
}
