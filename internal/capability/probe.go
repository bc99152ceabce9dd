package capability

import (
	"os/exec"
	"sync"
)

// PlottingBinary is the executable whose presence enables the plotting algorithms.
const PlottingBinary = "gnuplot"

// LookupFunc resolves an executable name to a path, like exec.LookPath.
type LookupFunc func(file string) (string, error)

// Probe checks for one optional executable and remembers the answer.
type Probe struct {
	binary string
	lookup LookupFunc
	once   sync.Once
	found  bool
}

// NewProbe returns a probe for binary. A nil lookup uses exec.LookPath.
func NewProbe(binary string, lookup LookupFunc) *Probe {
	if lookup == nil {
		lookup = exec.LookPath
	}
	return &Probe{binary: binary, lookup: lookup}
}

// Available runs the lookup on first call and returns the cached result
// afterwards, even if the executable appears or disappears later.
func (p *Probe) Available() bool {
	p.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				p.found = false
			}
		}()
		path, err := p.lookup(p.binary)
		p.found = err == nil && path != ""
	})
	return p.found
}

var plotting = NewProbe(PlottingBinary, nil)

// PlottingAvailable reports whether the plotting backend was found. The
// lookup happens once per process.
func PlottingAvailable() bool {
	return plotting.Available()
}
