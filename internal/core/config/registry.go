// Package config implements the layered configuration core for CommitKit.
//
// Configuration is read from two scopes (global, then project), validated
// against a static key registry, and merged by precedence into a single
// effective view. One reserved top-level key, the extension namespace,
// accepts arbitrary sub-configuration without key validation.
package config

import "sort"

// ExtensionKey is the reserved top-level key under which third parties may
// attach arbitrary sub-configuration. Only its presence at the top level is
// validated; everything beneath it is caller-defined.
const ExtensionKey = "extensions"

// MergePolicy governs how a key's values combine across scopes.
type MergePolicy uint8

const (
	// PolicyScalar replaces the value wholesale: the highest-precedence
	// scope that defines the key wins, arrays and objects included.
	PolicyScalar MergePolicy = iota
	// PolicyObject deep-merges child objects key by key, recursing into
	// nested objects; higher-precedence scalar leaves overwrite lower ones.
	PolicyObject
)

// String returns a human-readable policy name.
func (p MergePolicy) String() string {
	if p == PolicyObject {
		return "object"
	}
	return "scalar"
}

// Registry is the immutable table of recognized top-level keys, their merge
// policies, and their defaults. It has no mutation API; components receive a
// reference to it rather than consulting package-level state.
type Registry struct {
	entries map[string]entry
}

type entry struct {
	policy     MergePolicy
	defaultVal any
}

// NewRegistry builds the CommitKit key registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[string]entry{
			"model":       {PolicyScalar, "gpt-4o-mini"},
			"provider":    {PolicyScalar, "openai"},
			"api_base":    {PolicyScalar, "https://api.openai.com/v1"},
			"api_key_env": {PolicyScalar, "OPENAI_API_KEY"},
			"language":    {PolicyScalar, "en"},
			"debug":       {PolicyScalar, false},
			"commit": {PolicyObject, map[string]any{
				"style":              "conventional",
				"max_subject_length": float64(72),
				"include_body":       true,
			}},
			"branch": {PolicyObject, map[string]any{
				"prefix":     "feature",
				"separator":  "/",
				"max_length": float64(60),
			}},
			"request": {PolicyObject, map[string]any{
				"timeout_seconds": float64(30),
				"max_tokens":      float64(500),
				"temperature":     0.2,
			}},
			ExtensionKey: {PolicyObject, map[string]any{}},
		},
	}
}

// IsValidTopLevelKey reports whether key may appear at the top level of a
// scope file. The extension namespace is itself a valid key.
func (r *Registry) IsValidTopLevelKey(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// MergePolicyFor returns the merge policy for key. Keys not declared with
// object policy, including unknown keys, merge as scalars.
func (r *Registry) MergePolicyFor(key string) MergePolicy {
	if e, ok := r.entries[key]; ok {
		return e.policy
	}
	return PolicyScalar
}

// DefaultValue returns the registry default for key. Values are deep-cloned
// so callers cannot mutate the table through the result.
func (r *Registry) DefaultValue(key string) (any, bool) {
	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return cloneValue(e.defaultVal), true
}

// Keys returns all valid top-level keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
