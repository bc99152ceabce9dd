package registry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/specialistvlad/algoprovider/internal/builtin"
	"github.com/specialistvlad/algoprovider/internal/ctxlog"
	"github.com/specialistvlad/algoprovider/internal/scripts"
)

const (
	ProviderID   = "qgis"
	ProviderName = "QGIS"
	IconName     = "providerQgis.svg"
)

// Entry is an algorithm together with the channel it came from.
type Entry = algorithm.Entry

// Options configures a Provider. The zero value is usable: it loads the
// compiled-in catalogue, skips the plotting algorithms and discovers scripts
// next to the executable.
type Options struct {
	// PlottingAvailable gates the plotting algorithms. Callers normally pass
	// capability.PlottingAvailable().
	PlottingAvailable bool

	// ScriptsPath is the folder scanned for script definitions. Empty means
	// DefaultScriptsPath().
	ScriptsPath string

	// IconsPath is the directory SVGIconPath resolves the icon against.
	IconsPath string

	// Discoverer defaults to scripts.NewFolderLoader().
	Discoverer scripts.Discoverer

	// Logger receives logs of calls that carry no context, such as
	// RegisterExternal. Defaults to slog.Default().
	Logger *slog.Logger

	// Builtins and Plotting default to the builtin package catalogues.
	Builtins func() []algorithm.Algorithm
	Plotting func() []algorithm.Algorithm
}

// Provider is the algorithm provider exposed to the host.
//
// RegisterExternal ignores nil algorithms; every other algorithm is appended,
// duplicates included.
type Provider struct {
	plotting    bool
	scriptsPath string
	iconsPath   string
	discoverer  scripts.Discoverer
	builtins    func() []algorithm.Algorithm
	gated       func() []algorithm.Algorithm
	logger      *slog.Logger

	mu        sync.RWMutex
	catalogue []Entry
	external  []algorithm.Algorithm
}

// New creates a Provider with an empty catalogue. Nothing is loaded until
// LoadAlgorithms is called.
func New(opts Options) *Provider {
	p := &Provider{
		plotting:    opts.PlottingAvailable,
		scriptsPath: opts.ScriptsPath,
		iconsPath:   opts.IconsPath,
		discoverer:  opts.Discoverer,
		builtins:    opts.Builtins,
		gated:       opts.Plotting,
		logger:      opts.Logger,
	}
	if p.scriptsPath == "" {
		p.scriptsPath = DefaultScriptsPath()
	}
	if p.discoverer == nil {
		p.discoverer = scripts.NewFolderLoader()
	}
	if p.builtins == nil {
		p.builtins = builtin.Algorithms
	}
	if p.gated == nil {
		p.gated = builtin.PlottingAlgorithms
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("provider", ProviderID)
	return p
}

// DefaultScriptsPath is the "scripts" folder next to the running executable,
// or "scripts" relative to the working directory if the executable cannot be
// located.
func DefaultScriptsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "scripts"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "scripts")
}

func (p *Provider) ID() string   { return ProviderID }
func (p *Provider) Name() string { return ProviderName }

// Icon is the theme icon resource of the provider.
func (p *Provider) Icon() string { return "/" + IconName }

// SVGIconPath is the icon resolved against the configured icons directory.
func (p *Provider) SVGIconPath() string {
	return filepath.Join(p.iconsPath, IconName)
}

// SupportsNonFileBasedOutput reports that algorithms of this provider may
// produce in-memory results.
func (p *Provider) SupportsNonFileBasedOutput() bool { return true }

// ScriptsPath is the folder LoadAlgorithms discovers scripts in.
func (p *Provider) ScriptsPath() string { return p.scriptsPath }

// LoadAlgorithms rebuilds the catalogue. On error the previous catalogue is
// kept. Externally registered algorithms are not touched.
func (p *Provider) LoadAlgorithms(ctx context.Context) error {
	ctx, logger := ctxlog.With(ctx, "provider", ProviderID)
	logger.Debug("Loading algorithms...", "plotting", p.plotting, "scripts_path", p.scriptsPath)

	catalogue, err := p.assemble(ctx)
	if err != nil {
		logger.Error("Failed to load algorithms, keeping the previous catalogue.", "error", err)
		return fmt.Errorf("loading %s algorithms: %w", ProviderID, err)
	}

	p.mu.Lock()
	p.catalogue = catalogue
	external := len(p.external)
	p.mu.Unlock()

	logger.Info("Algorithms loaded.", "catalogue", len(catalogue), "external", external)
	return nil
}

func (p *Provider) assemble(ctx context.Context) ([]Entry, error) {
	builtins := p.builtins()
	var gated []algorithm.Algorithm
	if p.plotting {
		gated = p.gated()
	}

	discovered, err := p.discoverer.Discover(ctx, p.scriptsPath)
	if err != nil {
		return nil, fmt.Errorf("discovering scripts in %s: %w", p.scriptsPath, err)
	}

	catalogue := make([]Entry, 0, len(builtins)+len(gated)+len(discovered))
	catalogue = appendEntries(catalogue, builtins, algorithm.ChannelBuiltin)
	catalogue = appendEntries(catalogue, gated, algorithm.ChannelGated)
	for _, alg := range discovered {
		// Scripts dropped in by other packages can be viewed but not edited.
		alg.SetEditable(false)
	}
	catalogue = appendEntries(catalogue, discovered, algorithm.ChannelScript)

	ctxlog.FromContext(ctx).Debug("Catalogue assembled.",
		"builtin", len(builtins), "gated", len(gated), "scripts", len(discovered))
	return catalogue, nil
}

func appendEntries(dst []Entry, algs []algorithm.Algorithm, ch algorithm.Channel) []Entry {
	for _, alg := range algs {
		dst = append(dst, Entry{Algorithm: alg, Channel: ch})
	}
	return dst
}

// Algorithms returns the catalogue followed by the externally registered
// algorithms. The slice is a snapshot owned by the caller.
func (p *Provider) Algorithms() []algorithm.Algorithm {
	p.mu.RLock()
	defer p.mu.RUnlock()

	algs := make([]algorithm.Algorithm, 0, len(p.catalogue)+len(p.external))
	for _, e := range p.catalogue {
		algs = append(algs, e.Algorithm)
	}
	return append(algs, p.external...)
}

// Entries is Algorithms with the channel of each algorithm.
func (p *Provider) Entries() []Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries := make([]Entry, 0, len(p.catalogue)+len(p.external))
	entries = append(entries, p.catalogue...)
	return appendEntries(entries, p.external, algorithm.ChannelExternal)
}
