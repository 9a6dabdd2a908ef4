// Package prefs persists small string preferences such as the color theme.
// Backends include the SQLite store, an INI file and an in-memory map.
package prefs

import (
	"sync"
)

// KeyTheme is the key under which the chosen color theme is stored.
const KeyTheme = "theme"

// Store reads and writes single string preferences.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is an in-memory Store. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

type prefixed struct {
	prefix string
	store  Store
}

// WithPrefix scopes every key of s under prefix, so several users can share
// one backend (e.g. one preference row per SSH user).
func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return prefixed{prefix: prefix + ".", store: s}
}

func (p prefixed) Get(key string) (string, bool, error) {
	return p.store.Get(p.prefix + key)
}

func (p prefixed) Set(key, value string) error {
	return p.store.Set(p.prefix+key, value)
}
