// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"sort"
	"strings"
	"sync"
)

// StringRegistry is a thread-safe, string-keyed table.
// Lookups that return several entries always return them in key order.
type StringRegistry[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// NewStringRegistry creates a new empty registry.
func NewStringRegistry[V any]() *StringRegistry[V] {
	return &StringRegistry[V]{items: make(map[string]V)}
}

// Set stores value under key unless key is already taken.
// Reports whether the value was stored.
func (r *StringRegistry[V]) Set(key string, value V) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[key]; exists {
		return false
	}
	r.items[key] = value
	return true
}

// Get retrieves a value by key.
func (r *StringRegistry[V]) Get(key string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok
}

// Has checks if a key exists.
func (r *StringRegistry[V]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Len returns the number of entries.
func (r *StringRegistry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Keys returns all keys, sorted.
func (r *StringRegistry[V]) Keys() []string {
	return r.KeysWithPrefix("")
}

// KeysWithPrefix returns the sorted keys starting with prefix.
func (r *StringRegistry[V]) KeysWithPrefix(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedKeys(prefix)
}

// Values returns all values in key order.
func (r *StringRegistry[V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := r.sortedKeys("")
	values := make([]V, 0, len(keys))
	for _, k := range keys {
		values = append(values, r.items[k])
	}
	return values
}

// sortedKeys must be called with r.mu held.
func (r *StringRegistry[V]) sortedKeys(prefix string) []string {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
