package scripts

import (
	"github.com/Masterminds/semver/v3"
	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/zclconf/go-cty/cty"
)

// DefaultGroup is used for script algorithms that do not name a group.
const DefaultGroup = "Scripts"

// Script is an algorithm defined by a file in the scripts folder.
type Script struct {
	algorithm.Base

	Description string

	// Version is nil when the definition does not declare one.
	Version    *semver.Version
	Inputs     []Parameter
	Outputs    []Parameter
	SourcePath string
}

// Parameter is a declared input or output of a script algorithm.
type Parameter struct {
	Name        string
	Type        cty.Type
	Description string

	// Default is nil for required inputs and for outputs.
	Default *cty.Value
}

// Required reports whether callers must supply a value for the parameter.
func (p Parameter) Required() bool {
	return p.Default == nil
}

func newScript(id, name, group, path string) *Script {
	if group == "" {
		group = DefaultGroup
	}
	return &Script{
		Base:       algorithm.NewBase(id, name, group),
		SourcePath: path,
	}
}
