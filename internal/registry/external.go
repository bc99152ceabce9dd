package registry

import "github.com/specialistvlad/algoprovider/internal/algorithm"

// RegisterExternal appends alg to the externally registered algorithms. It
// may be called before or after LoadAlgorithms, any number of times. No
// checks are made beyond ignoring nil; identifier clashes are for the host to
// resolve.
func (p *Provider) RegisterExternal(alg algorithm.Algorithm) {
	if alg == nil {
		p.logger.Debug("Ignoring nil external algorithm.")
		return
	}

	p.mu.Lock()
	p.external = append(p.external, alg)
	p.mu.Unlock()

	p.logger.Debug("Registered external algorithm.", "id", alg.ID())
}

// External returns a snapshot of the externally registered algorithms.
func (p *Provider) External() []algorithm.Algorithm {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]algorithm.Algorithm(nil), p.external...)
}
