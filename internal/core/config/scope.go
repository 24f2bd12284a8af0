package config

import "fmt"

// Scope identifies one physical configuration source.
type Scope string

const (
	// ScopeGlobal is the per-user configuration file.
	ScopeGlobal Scope = "global"
	// ScopeProject is the per-repository configuration file.
	ScopeProject Scope = "project"
)

// Scopes returns all scopes in ascending precedence order:
// values in later scopes override values in earlier ones.
func Scopes() []Scope {
	return []Scope{ScopeGlobal, ScopeProject}
}

// ParseScope converts user input into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeProject:
		return ScopeProject, nil
	default:
		return "", fmt.Errorf("unknown scope %q (expected %q or %q)", s, ScopeGlobal, ScopeProject)
	}
}

// String returns the scope name.
func (s Scope) String() string {
	return string(s)
}
