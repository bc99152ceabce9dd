package scripts

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/algoprovider/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parseHCLString(t *testing.T, src string) ([]*Script, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, map[string]string{"script.hcl": src})
	scripts, diags := parseHCLFile(hclparse.NewParser(), filepath.Join(dir, "script.hcl"))
	if diags.HasErrors() {
		return nil, diags
	}
	return scripts, nil
}

func TestParseHCLFile_FullDefinition(t *testing.T) {
	// --- Arrange ---
	src := `
algorithm "buffer_by_field" {
  name        = "Buffer by field"
  group       = "Vector geometry"
  description = "Buffers each feature by a distance read from a field."
  version     = "1.4.2"

  input "layer" {
    type        = string
    description = "Layer to buffer."
  }
  input "segments" {
    type    = number
    default = 8
  }
  input "dissolve" {
    type    = bool
    default = false
  }
  input "options" {
    type    = any
    default = { cap = "round" }
  }

  output "buffered" {
    type = string
  }
}
`

	// --- Act ---
	scripts, err := parseHCLString(t, src)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	s := scripts[0]

	assert.Equal(t, "buffer_by_field", s.ID())
	assert.Equal(t, "Buffer by field", s.DisplayName())
	assert.Equal(t, "Vector geometry", s.Group())
	assert.Equal(t, "Buffers each feature by a distance read from a field.", s.Description)
	require.NotNil(t, s.Version)
	assert.Equal(t, "1.4.2", s.Version.String())
	assert.True(t, s.Editable(), "editability is decided by the provider, not the parser")

	require.Len(t, s.Inputs, 4)
	assert.Equal(t, "layer", s.Inputs[0].Name)
	assert.True(t, s.Inputs[0].Type.Equals(cty.String))
	assert.Equal(t, "Layer to buffer.", s.Inputs[0].Description)
	assert.True(t, s.Inputs[0].Required())

	assert.Equal(t, "segments", s.Inputs[1].Name)
	require.NotNil(t, s.Inputs[1].Default)
	assert.True(t, s.Inputs[1].Default.Equals(cty.NumberIntVal(8)).True())
	assert.False(t, s.Inputs[1].Required())

	assert.True(t, s.Inputs[2].Default.RawEquals(cty.False))
	assert.True(t, s.Inputs[3].Type.Equals(cty.DynamicPseudoType))
	require.NotNil(t, s.Inputs[3].Default)
	assert.True(t, s.Inputs[3].Default.Type().IsObjectType())

	require.Len(t, s.Outputs, 1)
	assert.Equal(t, "buffered", s.Outputs[0].Name)
	assert.Nil(t, s.Outputs[0].Default)
}

func TestParseHCLFile_DefaultGroup(t *testing.T) {
	scripts, err := parseHCLString(t, `algorithm "a" { name = "A" }`)

	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, DefaultGroup, scripts[0].Group())
	assert.Nil(t, scripts[0].Version)
}

func TestParseHCLFile_NoAlgorithms(t *testing.T) {
	scripts, err := parseHCLString(t, "")

	require.NoError(t, err)
	assert.Empty(t, scripts)
}

func TestParseHCLFile_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		contains string
	}{
		{
			name:     "missing name",
			src:      `algorithm "a" {}`,
			contains: `Missing required argument`,
		},
		{
			name:     "unknown top-level block",
			src:      `runner "a" {}`,
			contains: `Unsupported block type`,
		},
		{
			name:     "unknown attribute",
			src:      "algorithm \"a\" {\n  name = \"A\"\n  colour = \"red\"\n}\n",
			contains: `Unsupported argument`,
		},
		{
			name: "duplicate input",
			src: `
algorithm "a" {
  name = "A"
  input "x" { type = string }
  input "x" { type = number }
}`,
			contains: `Duplicate input definition`,
		},
		{
			name:     "missing type",
			src:      "algorithm \"a\" {\n  name = \"A\"\n  input \"x\" {\n  }\n}\n",
			contains: `Missing 'type' attribute`,
		},
		{
			name:     "default with wrong type",
			src:      "algorithm \"a\" {\n  name = \"A\"\n  input \"x\" {\n    type = number\n    default = \"eight\"\n  }\n}\n",
			contains: `Invalid default value type`,
		},
		{
			name:     "output with default",
			src:      "algorithm \"a\" {\n  name = \"A\"\n  output \"x\" {\n    type = string\n    default = \"y\"\n  }\n}\n",
			contains: `Unexpected default`,
		},
		{
			name:     "invalid version",
			src:      "algorithm \"a\" {\n  name = \"A\"\n  version = \"latest\"\n}\n",
			contains: `Invalid version`,
		},
		{
			name:     "one bad block rejects the file",
			src:      "algorithm \"good\" {\n  name = \"Good\"\n}\nalgorithm \"bad\" {\n}\n",
			contains: `Missing required argument`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scripts, err := parseHCLString(t, tc.src)

			require.Error(t, err)
			assert.Nil(t, scripts)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
