package host

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/specialistvlad/algoprovider/internal/registry"
	"github.com/specialistvlad/algoprovider/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	id    string
	algs  []algorithm.Algorithm
	err   error
	loads int
}

func (f *fakeProvider) ID() string                        { return f.id }
func (f *fakeProvider) Name() string                      { return f.id }
func (f *fakeProvider) Icon() string                      { return "" }
func (f *fakeProvider) SVGIconPath() string               { return "" }
func (f *fakeProvider) SupportsNonFileBasedOutput() bool  { return false }
func (f *fakeProvider) Algorithms() []algorithm.Algorithm { return f.algs }

func (f *fakeProvider) LoadAlgorithms(context.Context) error {
	f.loads++
	return f.err
}

func qualifiedIDs(listings []Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.QualifiedID
	}
	return ids
}

func TestHost_Add(t *testing.T) {
	h := New()

	require.NoError(t, h.Add(&fakeProvider{id: "one"}))
	require.NoError(t, h.Add(&fakeProvider{id: "two"}))

	err := h.Add(&fakeProvider{id: "one"})
	require.ErrorIs(t, err, ErrProviderExists)
	assert.Contains(t, err.Error(), `"one"`)

	require.ErrorIs(t, h.Add(nil), ErrNilProvider)

	providers := h.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, "one", providers[0].ID())
	assert.Equal(t, "two", providers[1].ID())

	p, ok := h.Provider("two")
	require.True(t, ok)
	assert.Same(t, providers[1], p)
}

func TestHost_Refresh(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.LogContext(t)
	boom := errors.New("boom")
	failing := &fakeProvider{id: "failing", err: boom}
	healthy := &fakeProvider{id: "healthy"}
	h := New()
	require.NoError(t, h.Add(failing))
	require.NoError(t, h.Add(healthy))

	// --- Act ---
	err := h.Refresh(ctx)

	// --- Assert ---
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `refreshing provider "failing"`)
	assert.Equal(t, 1, failing.loads)
	assert.Equal(t, 1, healthy.loads, "a failing provider must not stop the others")
}

func TestHost_AlgorithmsDeduplicates(t *testing.T) {
	// --- Arrange ---
	ctx, logs := testutil.LogContext(t)
	first := testutil.NewAlgorithm("dup")
	h := New()
	require.NoError(t, h.Add(&fakeProvider{
		id:   "p",
		algs: []algorithm.Algorithm{first, testutil.NewAlgorithm("other"), testutil.NewAlgorithm("dup")},
	}))
	require.NoError(t, h.Add(&fakeProvider{id: "q", algs: testutil.Algorithms("dup")}))

	// --- Act ---
	listings := h.Algorithms(ctx)

	// --- Assert ---
	assert.Equal(t, []string{"p:dup", "p:other", "q:dup"}, qualifiedIDs(listings))
	assert.Same(t, first, listings[0].Algorithm)
	assert.Empty(t, listings[0].Channel, "plain providers do not report channels")
	assert.Contains(t, logs.String(), "Duplicate algorithm identifier")
	assert.Contains(t, logs.String(), "id=p:dup")
}

func TestHost_WithRegistryProvider(t *testing.T) {
	// --- Arrange ---
	ctx, _ := testutil.LogContext(t)
	p := registry.New(registry.Options{
		Builtins:   func() []algorithm.Algorithm { return testutil.Algorithms("a", "b") },
		Discoverer: &testutil.Discoverer{IDs: []string{"s"}},
	})
	p.RegisterExternal(testutil.NewAlgorithm("a"))
	h := New()
	require.NoError(t, h.Add(p))

	// --- Act ---
	require.NoError(t, h.Refresh(ctx))
	listings := h.Algorithms(ctx)

	// --- Assert ---
	require.Equal(t, []string{"qgis:a", "qgis:b", "qgis:s"}, qualifiedIDs(listings))
	assert.Equal(t, "builtin", listings[0].Channel)
	assert.Equal(t, "script", listings[2].Channel)
	assert.False(t, listings[2].Editable)
	assert.Equal(t, "Test", listings[0].Group)

	alg, ok := h.Algorithm(ctx, "qgis:s")
	require.True(t, ok)
	assert.Equal(t, "s", alg.ID())

	_, ok = h.Algorithm(ctx, "qgis:missing")
	assert.False(t, ok)
	_, ok = h.Algorithm(ctx, "other:a")
	assert.False(t, ok)
	_, ok = h.Algorithm(ctx, "no-separator")
	assert.False(t, ok)
}

func TestSplitQualifiedID(t *testing.T) {
	testCases := []struct {
		in        string
		provider  string
		algorithm string
		ok        bool
	}{
		{in: "qgis:buffer", provider: "qgis", algorithm: "buffer", ok: true},
		{in: "qgis:a:b", provider: "qgis", algorithm: "a:b", ok: true},
		{in: "qgis:", ok: false},
		{in: ":buffer", ok: false},
		{in: "buffer", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			provider, alg, ok := SplitQualifiedID(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.provider, provider)
			assert.Equal(t, tc.algorithm, alg)
		})
	}

	assert.Equal(t, "qgis:buffer", QualifiedID("qgis", "buffer"))
}
