// Package hcl provides the concrete HCL implementation of config.Loader. It
// is responsible for settings file discovery, parsing, decoding into the
// block schema, and translating cty values (such as seed prices) into Go
// domain types.
package hcl
