// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package parsers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/docforge/docforge/pkg/types"
)

// Registry maps parser type identifiers to parser instances.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
	}
}

// Register adds a parser to the registry. Registering a second parser
// under the same type replaces the first; the last registration wins.
func (r *Registry) Register(p Parser) error {
	if p == nil {
		return fmt.Errorf("cannot register nil parser")
	}
	if p.Type() == "" {
		return fmt.Errorf("parser type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers[p.Type()] = p
	return nil
}

// MustRegister adds a parser to the registry, panicking on error.
func (r *Registry) MustRegister(p Parser) {
	if err := r.Register(p); err != nil {
		panic(fmt.Sprintf("failed to register parser: %v", err))
	}
}

// Get returns the parser registered under typ, or nil if absent.
func (r *Registry) Get(typ string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.parsers[typ]
}

// FindParser resolves the parser for a request: lookup by request type,
// then a CanParse capability check. Returns nil when either fails, so a
// mismatched source (a .py file submitted as type openapi) is rejected
// even though the type key is registered.
func (r *Registry) FindParser(req *types.ParseRequest) Parser {
	if req == nil {
		return nil
	}

	p := r.Get(req.Type)
	if p == nil {
		return nil
	}
	if !p.CanParse(req) {
		return nil
	}
	return p
}

// List returns the sorted type identifiers of all registered parsers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered parsers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.parsers)
}

// Has checks if a parser is registered under typ.
func (r *Registry) Has(typ string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.parsers[typ]
	return exists
}

// Clear removes all parsers from the registry.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers = make(map[string]Parser)
}
