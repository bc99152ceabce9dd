package scripts

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/algoprovider/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
)

// hclFileSchema is the top-level structure of a script file: one or more
// 'algorithm' blocks and nothing else.
type hclFileSchema struct {
	Algorithms []*hclAlgorithm `hcl:"algorithm,block"`
}

type hclAlgorithm struct {
	ID   string   `hcl:"id,label"`
	Body hcl.Body `hcl:",remain"`
}

var algorithmBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name", Required: true},
		{Name: "group"},
		{Name: "description"},
		{Name: "version"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

var parameterBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but its absence is reported by hand for a
		// clearer message.
		{Name: "type"},
		{Name: "description"},
		{Name: "default"},
	},
}

// parseHCLFile decodes every 'algorithm' block in the file at path. Any error
// diagnostic rejects the whole file.
func parseHCLFile(parser *hclparse.Parser, path string) ([]*Script, hcl.Diagnostics) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}

	var root hclFileSchema
	diags = append(diags, gohcl.DecodeBody(file.Body, nil, &root)...)
	if diags.HasErrors() {
		return nil, diags
	}

	scripts := make([]*Script, 0, len(root.Algorithms))
	for _, block := range root.Algorithms {
		script, blockDiags := decodeAlgorithmBlock(block, path)
		diags = append(diags, blockDiags...)
		if script != nil {
			scripts = append(scripts, script)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return scripts, diags
}

func decodeAlgorithmBlock(block *hclAlgorithm, path string) (*Script, hcl.Diagnostics) {
	content, diags := block.Body.Content(algorithmBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	var name, group, description, version string
	for _, field := range []struct {
		attr   string
		target *string
	}{
		{"name", &name},
		{"group", &group},
		{"description", &description},
		{"version", &version},
	} {
		if attr, ok := content.Attributes[field.attr]; ok {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, field.target)...)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	script := newScript(block.ID, name, group, path)
	script.Description = description

	if version != "" {
		v, err := semver.NewVersion(version)
		if err != nil {
			attr := content.Attributes["version"]
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid version",
				Detail:   fmt.Sprintf("The version %q of algorithm '%s' is not a semantic version: %s.", version, block.ID, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		script.Version = v
	}

	var paramDiags hcl.Diagnostics
	script.Inputs, paramDiags = parseParameters(content.Blocks.OfType("input"), true)
	diags = append(diags, paramDiags...)

	script.Outputs, paramDiags = parseParameters(content.Blocks.OfType("output"), false)
	diags = append(diags, paramDiags...)

	if diags.HasErrors() {
		return nil, diags
	}
	return script, diags
}

// parseParameters decodes 'input' or 'output' blocks in declaration order.
func parseParameters(blocks hcl.Blocks, allowDefault bool) ([]Parameter, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	params := make([]Parameter, 0, len(blocks))
	seen := make(map[string]bool, len(blocks))

	for _, block := range blocks {
		// The schema guarantees us one label.
		paramName := block.Labels[0]

		if seen[paramName] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate " + block.Type + " definition",
				Detail:   fmt.Sprintf("An %s named '%s' has already been defined.", block.Type, paramName),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[paramName] = true

		content, contentDiags := block.Body.Content(parameterBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		typeAttr, ok := content.Attributes["type"]
		if !ok {
			missing := block.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing 'type' attribute",
				Detail:   fmt.Sprintf("The 'type' attribute is required for all %s blocks.", block.Type),
				Subject:  &missing,
			})
			continue
		}

		ctyType, typeDiags := hclutil.TypeExprToCtyType(typeAttr.Expr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		param := Parameter{Name: paramName, Type: ctyType}

		if descAttr, ok := content.Attributes["description"]; ok {
			diags = append(diags, gohcl.DecodeExpression(descAttr.Expr, nil, &param.Description)...)
		}

		if defaultAttr, ok := content.Attributes["default"]; ok {
			if !allowDefault {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unexpected default",
					Detail:   fmt.Sprintf("The %s '%s' cannot declare a default value.", block.Type, paramName),
					Subject:  defaultAttr.Expr.Range().Ptr(),
				})
				continue
			}

			// Defaults must be literal values, hence the nil eval context.
			val, valDiags := defaultAttr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			if !ctyType.Equals(cty.DynamicPseudoType) && !val.Type().Equals(ctyType) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid default value type",
					Detail:   fmt.Sprintf("The default value for '%s' is not compatible with its type, '%s'.", paramName, ctyType.FriendlyName()),
					Subject:  defaultAttr.Expr.Range().Ptr(),
				})
				continue
			}
			param.Default = &val
		}

		params = append(params, param)
	}

	return params, diags
}
