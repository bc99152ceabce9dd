// Package hclutil resolves the type keywords used by script definitions
// ("string", "number", "bool", "any") to cty types, for both the HCL and the
// YAML parsers.
package hclutil
