package algorithm

import "fmt"

// Algorithm is a single runnable unit the host can list and execute.
type Algorithm interface {
	// ID is the stable identifier, unique within its provider by convention.
	ID() string
	// DisplayName is the human readable name shown by the host.
	DisplayName() string
	// Editable reports whether the host may open the unit in its editor.
	Editable() bool
	// SetEditable overrides the editable flag.
	SetEditable(editable bool)
}

// Grouped is implemented by algorithms that belong to a named group.
type Grouped interface {
	Group() string
}

// Channel records which provenance channel put an algorithm into a provider.
type Channel int

const (
	ChannelBuiltin Channel = iota
	ChannelGated
	ChannelScript
	ChannelExternal
)

func (c Channel) String() string {
	switch c {
	case ChannelBuiltin:
		return "builtin"
	case ChannelGated:
		return "gated"
	case ChannelScript:
		return "script"
	case ChannelExternal:
		return "external"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// MarshalText lets channels appear by name in JSON listings.
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Entry is an algorithm together with the channel it came from.
type Entry struct {
	Algorithm Algorithm
	Channel   Channel
}

// Base is an embeddable implementation of Algorithm.
type Base struct {
	id       string
	name     string
	group    string
	readOnly bool
}

// NewBase returns an editable Base.
func NewBase(id, name, group string) Base {
	return Base{id: id, name: name, group: group}
}

func (b *Base) ID() string          { return b.id }
func (b *Base) DisplayName() string { return b.name }
func (b *Base) Group() string       { return b.group }
func (b *Base) Editable() bool      { return !b.readOnly }

func (b *Base) SetEditable(editable bool) {
	b.readOnly = !editable
}

// GroupOf returns the group of alg, or "" when it has none.
func GroupOf(alg Algorithm) string {
	if g, ok := alg.(Grouped); ok {
		return g.Group()
	}
	return ""
}

// IDs returns the identifiers of algs in order.
func IDs(algs []Algorithm) []string {
	ids := make([]string, len(algs))
	for i, a := range algs {
		ids[i] = a.ID()
	}
	return ids
}
