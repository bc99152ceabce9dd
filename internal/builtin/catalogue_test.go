package builtin

import (
	"testing"

	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithms_DeclarationOrder(t *testing.T) {
	algs := Algorithms()

	require.Len(t, algs, 93)
	assert.Equal(t, "addtablefield", algs[0].ID())
	assert.Equal(t, "aspect", algs[1].ID())
	assert.Equal(t, "zonalstatistics", algs[len(algs)-1].ID())
}

func TestAlgorithms_UniqueAndComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, alg := range Algorithms() {
		require.False(t, seen[alg.ID()], "duplicate built-in id %q", alg.ID())
		seen[alg.ID()] = true

		assert.NotEmpty(t, alg.DisplayName(), "built-in %q has no display name", alg.ID())
		assert.NotEmpty(t, algorithm.GroupOf(alg), "built-in %q has no group", alg.ID())
		assert.True(t, alg.Editable(), "built-in %q should start editable", alg.ID())
	}

	for _, alg := range PlottingAlgorithms() {
		assert.False(t, seen[alg.ID()], "plotting algorithm %q is also a built-in", alg.ID())
	}
}

func TestAlgorithms_FreshInstances(t *testing.T) {
	first := Algorithms()
	first[0].SetEditable(false)

	second := Algorithms()

	assert.NotSame(t, first[0], second[0])
	assert.True(t, second[0].Editable(), "a new catalogue must not see changes made to an earlier one")
	assert.Equal(t, algorithm.IDs(first), algorithm.IDs(second))
}

func TestPlottingAlgorithms(t *testing.T) {
	algs := PlottingAlgorithms()

	require.Len(t, algs, 1)
	assert.Equal(t, "barplot", algs[0].ID())
	assert.Equal(t, "Graphics", algorithm.GroupOf(algs[0]))
}
