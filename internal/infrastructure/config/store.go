// Package config provides file-backed persistence and lifecycle management
// for the layered configuration core.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	coreconfig "commitkit.dev/cli/internal/core/config"
)

const (
	globalConfigDirEnv = "CK_CONFIG_DIR"
	globalConfigName   = "config.json"
	projectConfigName  = ".commitkit.json"
)

// Store maps each scope to one JSON file on disk and handles loading and
// atomic replacement. A missing file is equivalent to an empty config.
type Store struct {
	paths map[coreconfig.Scope]string
}

// NewStore creates a store with explicit per-scope file paths.
func NewStore(globalPath, projectPath string) *Store {
	return &Store{
		paths: map[coreconfig.Scope]string{
			coreconfig.ScopeGlobal:  globalPath,
			coreconfig.ScopeProject: projectPath,
		},
	}
}

// DefaultStore creates a store with the standard file locations: the global
// scope under the user config directory (overridable via CK_CONFIG_DIR) and
// the project scope in projectDir.
func DefaultStore(projectDir string) *Store {
	return NewStore(defaultGlobalPath(), filepath.Join(projectDir, projectConfigName))
}

func defaultGlobalPath() string {
	if dir := os.Getenv(globalConfigDirEnv); dir != "" {
		return filepath.Join(dir, globalConfigName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".commitkit", globalConfigName)
	}
	return filepath.Join(homeDir, ".config", "commitkit", globalConfigName)
}

// Path returns the file path backing a scope.
func (s *Store) Path(scope coreconfig.Scope) string {
	return s.paths[scope]
}

// Load reads one scope's raw config. An absent file yields an empty object;
// unreadable files yield an IOError and malformed content a ParseError.
func (s *Store) Load(scope coreconfig.Scope) (map[string]any, error) {
	path := s.paths[scope]

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, &coreconfig.IOError{Scope: scope, Op: "read", Path: path, Err: err}
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &coreconfig.ParseError{Scope: scope, Path: path, Err: err}
	}
	raw, ok := parsed.(map[string]any)
	if !ok {
		return nil, &coreconfig.ParseError{
			Scope: scope,
			Path:  path,
			Err:   fmt.Errorf("top level must be a JSON object, got %T", parsed),
		}
	}
	return raw, nil
}

// Persist serializes raw and atomically replaces the scope's file. The write
// goes to a temp file in the target directory followed by a rename, so a
// crash mid-write never leaves a torn file behind.
func (s *Store) Persist(scope coreconfig.Scope, raw map[string]any) error {
	path := s.paths[scope]
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &coreconfig.IOError{Scope: scope, Op: "mkdir", Path: dir, Err: err}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s configuration: %w", scope, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".commitkit-*.tmp")
	if err != nil {
		return &coreconfig.IOError{Scope: scope, Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &coreconfig.IOError{Scope: scope, Op: "write", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &coreconfig.IOError{Scope: scope, Op: "write", Path: tmpPath, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &coreconfig.IOError{Scope: scope, Op: "write", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &coreconfig.IOError{Scope: scope, Op: "rename", Path: path, Err: err}
	}
	return nil
}
