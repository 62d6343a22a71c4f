// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cache provides the result cache used by the parser service.
// Eviction policy belongs to the surrounding system; the in-memory
// implementation here grows unbounded and is cleared explicitly.
package cache

import "sync"

// Cache is a string-keyed store for parse results. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(key string) (any, bool)

	// Set stores a value under key, replacing any existing entry.
	Set(key string, value any)

	// Delete removes one entry.
	Delete(key string)

	// Clear removes every entry.
	Clear()

	// Len returns the number of cached entries.
	Len() int
}

// Memory is the default in-process Cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]any)}
}

// Get returns the cached value and whether it was present.
func (c *Memory) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

// Set stores a value under key, replacing any existing entry.
func (c *Memory) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete removes one entry.
func (c *Memory) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

// Len returns the number of cached entries.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
