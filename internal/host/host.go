package host

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/specialistvlad/algoprovider/internal/algorithm"
	"github.com/specialistvlad/algoprovider/internal/ctxlog"
)

var (
	ErrNilProvider    = errors.New("provider is nil")
	ErrProviderExists = errors.New("provider already installed")
)

// Separator joins a provider id and an algorithm id.
const Separator = ":"

// Provider is the contract a provider offers the host.
type Provider interface {
	ID() string
	Name() string
	Icon() string
	SVGIconPath() string
	SupportsNonFileBasedOutput() bool
	LoadAlgorithms(ctx context.Context) error
	Algorithms() []algorithm.Algorithm
}

// EntryLister is implemented by providers that know the channel of each of
// their algorithms.
type EntryLister interface {
	Entries() []algorithm.Entry
}

// Listing is one algorithm as the host presents it.
type Listing struct {
	QualifiedID string              `json:"id"`
	ProviderID  string              `json:"provider"`
	Name        string              `json:"name"`
	Group       string              `json:"group,omitempty"`
	Channel     string              `json:"channel,omitempty"`
	Editable    bool                `json:"editable"`
	Algorithm   algorithm.Algorithm `json:"-"`
}

// Host holds the installed providers in installation order.
type Host struct {
	mu        sync.RWMutex
	providers []Provider
	byID      map[string]Provider
}

// New returns a Host with no providers.
func New() *Host {
	return &Host{byID: make(map[string]Provider)}
}

// Add installs p. Provider ids must be unique within a host.
func (h *Host) Add(p Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.byID[p.ID()]; ok {
		return fmt.Errorf("%w: %q", ErrProviderExists, p.ID())
	}
	h.providers = append(h.providers, p)
	h.byID[p.ID()] = p
	return nil
}

// Provider returns the installed provider with the given id.
func (h *Host) Provider(id string) (Provider, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.byID[id]
	return p, ok
}

// Providers returns the installed providers in installation order.
func (h *Host) Providers() []Provider {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Provider(nil), h.providers...)
}

// Refresh reloads every provider. A failing provider does not stop the
// others; all failures are returned joined.
func (h *Host) Refresh(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	for _, p := range h.Providers() {
		logger.Debug("Refreshing provider.", "provider", p.ID())
		if err := p.LoadAlgorithms(ctx); err != nil {
			logger.Error("Provider refresh failed.", "provider", p.ID(), "error", err)
			errs = append(errs, fmt.Errorf("refreshing provider %q: %w", p.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Algorithms lists the algorithms of every provider under qualified ids. A
// qualified id that was already listed is dropped with a warning.
func (h *Host) Algorithms(ctx context.Context) []Listing {
	logger := ctxlog.FromContext(ctx)

	var listings []Listing
	seen := make(map[string]struct{})
	for _, p := range h.Providers() {
		for _, entry := range entriesOf(p) {
			alg := entry.Algorithm
			qid := QualifiedID(p.ID(), alg.ID())
			if _, dup := seen[qid]; dup {
				logger.Warn("Duplicate algorithm identifier, keeping the first one.",
					"id", qid, "name", alg.DisplayName())
				continue
			}
			seen[qid] = struct{}{}

			listing := Listing{
				QualifiedID: qid,
				ProviderID:  p.ID(),
				Name:        alg.DisplayName(),
				Group:       algorithm.GroupOf(alg),
				Editable:    alg.Editable(),
				Algorithm:   alg,
			}
			if entry.known {
				listing.Channel = entry.Channel.String()
			}
			listings = append(listings, listing)
		}
	}
	return listings
}

// Algorithm looks up an algorithm by its qualified id.
func (h *Host) Algorithm(ctx context.Context, qualifiedID string) (algorithm.Algorithm, bool) {
	providerID, _, ok := SplitQualifiedID(qualifiedID)
	if !ok {
		return nil, false
	}
	if _, ok := h.Provider(providerID); !ok {
		return nil, false
	}
	for _, l := range h.Algorithms(ctx) {
		if l.QualifiedID == qualifiedID {
			return l.Algorithm, true
		}
	}
	return nil, false
}

// QualifiedID joins a provider id and an algorithm id.
func QualifiedID(providerID, algorithmID string) string {
	return providerID + Separator + algorithmID
}

// SplitQualifiedID is the inverse of QualifiedID. Algorithm ids may contain
// the separator; provider ids may not.
func SplitQualifiedID(qualifiedID string) (providerID, algorithmID string, ok bool) {
	providerID, algorithmID, ok = strings.Cut(qualifiedID, Separator)
	if !ok || providerID == "" || algorithmID == "" {
		return "", "", false
	}
	return providerID, algorithmID, true
}

type entry struct {
	algorithm.Entry
	known bool
}

func entriesOf(p Provider) []entry {
	if lister, ok := p.(EntryLister); ok {
		src := lister.Entries()
		out := make([]entry, len(src))
		for i, e := range src {
			out[i] = entry{Entry: e, known: true}
		}
		return out
	}

	algs := p.Algorithms()
	out := make([]entry, len(algs))
	for i, alg := range algs {
		out[i] = entry{Entry: algorithm.Entry{Algorithm: alg}}
	}
	return out
}
