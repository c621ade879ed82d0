package provider

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// priorityOrder is the fixed best-first provider order
var priorityOrder = []string{NameBrave, NameSerpAPI, NameGooglePSE, NameBing, NameGroq}

// GetProviderOrder returns the provider names in priority order, best first.
// The returned slice is a copy.
func GetProviderOrder() []string {
	return append([]string(nil), priorityOrder...)
}

// Registry holds constructed providers by name
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates a registry holding the given providers
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a provider under its own name
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the named provider
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return p, nil
}

// Ordered returns the enabled providers that appear in the priority order,
// best first.
func (r *Registry) Ordered() []Provider {
	return r.Select(priorityOrder)
}

// Select returns the enabled providers among names, in the order given.
// Unknown names are skipped.
func (r *Registry) Select(names []string) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, 0, len(names))
	for _, name := range names {
		if p, ok := r.providers[name]; ok && p.Enabled() {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the registered provider names, priority order first, then
// any others sorted by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.providers))
	seen := make(map[string]bool, len(r.providers))
	for _, name := range priorityOrder {
		if _, ok := r.providers[name]; ok {
			out = append(out, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range r.providers {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Close releases idle connections held by any provider that supports it
func (r *Registry) Close() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if c, ok := p.(io.Closer); ok {
			_ = c.Close()
		}
	}
	return nil
}
