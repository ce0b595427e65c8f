package inference

import "sync"

// Registry is an ordered list of inference rules, independent of any single
// agent. Rules are evaluated in registration order.
//
// Thread-safe for concurrent access.
type Registry struct {
	mu    sync.RWMutex
	rules []*Rule
}

// NewRegistry returns an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a rule to the registry.
func (reg *Registry) Add(r *Rule) error {
	if r == nil {
		return ErrNilRule
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.rules = append(reg.rules, r)
	return nil
}

// Rules returns a snapshot of the registered rules in registration order.
func (reg *Registry) Rules() []*Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rules := make([]*Rule, len(reg.rules))
	copy(rules, reg.rules)
	return rules
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rules)
}
