// Package validator wraps go-playground/validator with the rules shared by
// the product model and the settings model.
package validator

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator validates structs by their `validate` tags.
//
// On top of the stock tags it understands:
//   - decimal.Decimal fields, compared by sign, so `gt=0` means strictly positive
//   - `token`: a non-empty string without whitespace
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalSign, decimal.Decimal{})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("token", isToken)
	return &Validator{v: v}
}

// Struct validates s.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

func decimalSign(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.Sign()
	}
	return nil
}

func isToken(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}
