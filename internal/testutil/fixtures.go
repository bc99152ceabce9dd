package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates a temporary directory and writes files into it. Keys are
// slash-separated paths relative to the directory, so nested folders are
// created as needed. The directory path is returned.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// Algorithm is a minimal algorithm.Algorithm for tests.
type Algorithm struct {
	algorithm.Base
}

// NewAlgorithm returns an editable test algorithm whose display name is its id.
func NewAlgorithm(id string) *Algorithm {
	return &Algorithm{Base: algorithm.NewBase(id, id, "Test")}
}

// Algorithms returns one fresh test algorithm per id.
func Algorithms(ids ...string) []algorithm.Algorithm {
	algs := make([]algorithm.Algorithm, len(ids))
	for i, id := range ids {
		algs[i] = NewAlgorithm(id)
	}
	return algs
}

// Discoverer is a scripted discoverer. Each call to Discover builds fresh
// algorithms from IDs, or returns Err when it is set.
type Discoverer struct {
	IDs     []string
	Err     error
	Calls   int
	Folders []string
}

// Discover implements scripts.Discoverer.
func (d *Discoverer) Discover(_ context.Context, folder string) ([]algorithm.Algorithm, error) {
	d.Calls++
	d.Folders = append(d.Folders, folder)
	if d.Err != nil {
		return nil, d.Err
	}
	return Algorithms(d.IDs...), nil
}
