package indent

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered indent strategies.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Strategy
	aliases map[string]string // alias -> canonical name
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Strategy),
		aliases: make(map[string]string),
	}
}

// Register adds a strategy to the registry.
// If a strategy with the same name already exists, it is replaced.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[s.Name()] = s
}

// RegisterAlias maps an alias to a canonical strategy name.
// Used for alternate language spellings (e.g., "c" -> "braces").
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Get retrieves a strategy by name or alias.
func (r *Registry) Get(key string) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.byName[key]; ok {
		return s, true
	}
	if target, ok := r.aliases[key]; ok {
		if s, ok := r.byName[target]; ok {
			return s, true
		}
	}
	return nil, false
}

// Strategies returns all registered strategies sorted by name.
func (r *Registry) Strategies() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Strategy, 0, len(r.byName))
	for _, s := range r.byName {
		result = append(result, s)
	}

	slices.SortFunc(result, func(a, b Strategy) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return result
}

// Names returns all registered strategy names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byName))
	for name := range r.byName {
		result = append(result, name)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in strategies.
// The strategies package populates it via init().
//
//nolint:gochecknoglobals // Global registry enables init()-time registration
var DefaultRegistry = NewRegistry()
