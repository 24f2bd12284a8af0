package config

import (
	coreconfig "commitkit.dev/cli/internal/core/config"
)

// Manager owns the configuration lifecycle for one command invocation: it
// loads each scope's file, validates top-level keys against the registry,
// merges scopes into the effective view, and applies scoped mutations.
type Manager struct {
	registry  *coreconfig.Registry
	store     *Store
	raw       map[coreconfig.Scope]map[string]any
	effective map[string]any
	loaded    bool
}

// NewManager creates a manager over the given registry and store.
func NewManager(registry *coreconfig.Registry, store *Store) *Manager {
	return &Manager{
		registry: registry,
		store:    store,
		raw:      make(map[coreconfig.Scope]map[string]any),
	}
}

// Load reads and validates every scope, then derives the effective config.
// A broken scope aborts the whole load; no partial configuration is trusted.
func (m *Manager) Load() error {
	raw := make(map[coreconfig.Scope]map[string]any, len(coreconfig.Scopes()))
	for _, scope := range coreconfig.Scopes() {
		scopeRaw, err := m.store.Load(scope)
		if err != nil {
			return err
		}
		if err := m.validateTopLevel(scope, scopeRaw); err != nil {
			return err
		}
		raw[scope] = scopeRaw
	}

	m.raw = raw
	m.remerge()
	m.loaded = true
	return nil
}

// validateTopLevel checks every top-level key of one scope's raw config
// against the registry. The extension namespace itself is a registry entry,
// so everything beneath it passes untouched.
func (m *Manager) validateTopLevel(scope coreconfig.Scope, raw map[string]any) error {
	for key := range raw {
		if !m.registry.IsValidTopLevelKey(key) {
			return &coreconfig.ValidationError{Scope: scope, Key: key}
		}
	}
	return nil
}

func (m *Manager) remerge() {
	scopes := make([]map[string]any, 0, len(coreconfig.Scopes()))
	for _, scope := range coreconfig.Scopes() {
		scopes = append(scopes, m.raw[scope])
	}
	m.effective = coreconfig.Merge(m.registry, scopes...)
}

func (m *Manager) ensureLoaded() error {
	if m.loaded {
		return nil
	}
	return m.Load()
}

// Get resolves path against the effective configuration, loading first if
// needed. A missing leaf yields found=false, not an error.
func (m *Manager) Get(path string) (any, bool, error) {
	if err := m.ensureLoaded(); err != nil {
		return nil, false, err
	}
	return coreconfig.Get(m.registry, m.effective, path)
}

// Effective returns a copy of the merged configuration.
func (m *Manager) Effective() (map[string]any, error) {
	if err := m.ensureLoaded(); err != nil {
		return nil, err
	}
	return coreconfig.Clone(m.effective), nil
}

// Raw returns a copy of one scope's raw configuration.
func (m *Manager) Raw(scope coreconfig.Scope) (map[string]any, error) {
	if err := m.ensureLoaded(); err != nil {
		return nil, err
	}
	return coreconfig.Clone(m.raw[scope]), nil
}

// Set writes value at path within the named scope only, persists that
// scope's file, and re-derives the effective config. A failed validation or
// persist leaves both disk and the in-memory state untouched.
func (m *Manager) Set(scope coreconfig.Scope, path string, value any) error {
	return m.mutate(scope, func(raw map[string]any) error {
		return coreconfig.Set(m.registry, raw, path, value)
	})
}

// Remove deletes the leaf at path within the named scope only. Removing a
// path whose parent does not exist is a no-op.
func (m *Manager) Remove(scope coreconfig.Scope, path string) error {
	return m.mutate(scope, func(raw map[string]any) error {
		return coreconfig.Remove(m.registry, raw, path)
	})
}

func (m *Manager) mutate(scope coreconfig.Scope, apply func(map[string]any) error) error {
	if err := m.ensureLoaded(); err != nil {
		return err
	}

	// Mutate a copy so a failed apply or persist never dirties state.
	next := coreconfig.Clone(m.raw[scope])
	if err := apply(next); err != nil {
		return err
	}
	if err := m.store.Persist(scope, next); err != nil {
		return err
	}

	m.raw[scope] = next
	m.remerge()
	return nil
}

// Path returns the file path backing a scope.
func (m *Manager) Path(scope coreconfig.Scope) string {
	return m.store.Path(scope)
}
