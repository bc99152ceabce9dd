package hclutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

var typeKeywords = map[string]cty.Type{
	"string": cty.String,
	"number": cty.Number,
	"bool":   cty.Bool,
	"any":    cty.DynamicPseudoType,
}

// TypeByName resolves a type keyword such as "string" to its cty.Type.
func TypeByName(name string) (cty.Type, bool) {
	t, ok := typeKeywords[name]
	return t, ok
}

// TypeNames lists the supported type keywords in sorted order.
func TypeNames() []string {
	names := make([]string, 0, len(typeKeywords))
	for name := range typeKeywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeExprToCtyType converts an expression naming a type, such as the bare
// `string` keyword, into its cty.Type.
func TypeExprToCtyType(expr hcl.Expression) (cty.Type, hcl.Diagnostics) {
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || len(traversal) != 1 {
		return cty.NilType, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "The 'type' attribute must be a simple type keyword like 'string', 'number', or 'bool', not a complex expression.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	typeName := traversal.RootName()
	t, ok := TypeByName(typeName)
	if !ok {
		return cty.NilType, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid type. Supported types are: %s.", typeName, strings.Join(TypeNames(), ", ")),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return t, nil
}
