package scripts

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/specialistvlad/algoprovider/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"go.yaml.in/yaml/v3"
)

//go:embed schema/script.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("script.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("script.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

type yamlScript struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Group       string          `yaml:"group"`
	Description string          `yaml:"description"`
	Version     string          `yaml:"version"`
	Inputs      []yamlParameter `yaml:"inputs"`
	Outputs     []yamlParameter `yaml:"outputs"`
}

type yamlParameter struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`
	Description string    `yaml:"description"`
	Default     yaml.Node `yaml:"default"`
}

// parseYAMLFile reads a single algorithm definition from path.
func parseYAMLFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := validateYAML(data); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	var raw yamlScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	script := newScript(raw.ID, raw.Name, raw.Group, path)
	script.Description = raw.Description

	if raw.Version != "" {
		v, err := semver.NewVersion(raw.Version)
		if err != nil {
			return nil, fmt.Errorf("%s: version %q of algorithm '%s': %w", path, raw.Version, raw.ID, err)
		}
		script.Version = v
	}

	if script.Inputs, err = convertParameters(raw.Inputs); err != nil {
		return nil, fmt.Errorf("%s: inputs of algorithm '%s': %w", path, raw.ID, err)
	}
	if script.Outputs, err = convertParameters(raw.Outputs); err != nil {
		return nil, fmt.Errorf("%s: outputs of algorithm '%s': %w", path, raw.ID, err)
	}

	return script, nil
}

// validateYAML checks the document against the embedded schema. The YAML is
// re-encoded as JSON first so the validator only ever sees JSON values.
func validateYAML(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("document is empty")
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting YAML to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("converting YAML to JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return err
	}
	return schema.Validate(inst)
}

func convertParameters(raw []yamlParameter) ([]Parameter, error) {
	params := make([]Parameter, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, r := range raw {
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate parameter '%s'", r.Name)
		}
		seen[r.Name] = true

		ctyType, ok := hclutil.TypeByName(r.Type)
		if !ok {
			return nil, fmt.Errorf("parameter '%s': unsupported type %q", r.Name, r.Type)
		}
		param := Parameter{Name: r.Name, Type: ctyType, Description: r.Description}

		if !r.Default.IsZero() {
			val, err := defaultValue(&r.Default, ctyType)
			if err != nil {
				return nil, fmt.Errorf("parameter '%s': %w", r.Name, err)
			}
			param.Default = &val
		}

		params = append(params, param)
	}
	return params, nil
}

// defaultValue converts a YAML default into a cty.Value of the declared type.
func defaultValue(node *yaml.Node, want cty.Type) (cty.Value, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return cty.NilVal, fmt.Errorf("decoding default: %w", err)
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("encoding default: %w", err)
	}

	if want.Equals(cty.DynamicPseudoType) {
		want, err = ctyjson.ImpliedType(encoded)
		if err != nil {
			return cty.NilVal, fmt.Errorf("inferring default type: %w", err)
		}
	}

	val, err := ctyjson.Unmarshal(encoded, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("default is not a valid %s: %w", want.FriendlyName(), err)
	}
	return val, nil
}
