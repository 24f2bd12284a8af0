package config

import "strings"

// SplitPath splits a dot-delimited path into segments, rejecting empty
// paths and empty segments.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &PathError{Path: path, Message: "path is empty"}
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, &PathError{Path: path, Message: "path contains an empty segment"}
		}
	}
	return segments, nil
}

// validateRoot checks the first path segment against the registry. Paths
// rooted under the extension namespace are accepted regardless of the
// remaining segments.
func validateRoot(reg *Registry, segments []string) error {
	if !reg.IsValidTopLevelKey(segments[0]) {
		return &ValidationError{Key: segments[0]}
	}
	return nil
}

// Get walks path against root and returns the value at the leaf. A missing
// leaf, or a non-object intermediate while segments remain, yields
// (nil, false, nil); only a malformed or invalidly rooted path is an error.
func Get(reg *Registry, root map[string]any, path string) (any, bool, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return nil, false, err
	}
	if err := validateRoot(reg, segments); err != nil {
		return nil, false, err
	}

	current := any(root)
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false, nil
		}
		val, exists := m[seg]
		if !exists {
			return nil, false, nil
		}
		current = val
	}
	return current, true, nil
}

// Set assigns value at path within root, creating intermediate objects for
// every segment but the last. An existing non-object intermediate is
// overwritten with a fresh object. Set does not consult merge policy; policy
// only matters during cross-scope merge.
func Set(reg *Registry, root map[string]any, path string, value any) error {
	segments, err := SplitPath(path)
	if err != nil {
		return err
	}
	if err := validateRoot(reg, segments); err != nil {
		return err
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
	return nil
}

// Remove deletes the leaf at path within root. A path whose parent does not
// exist (or is not an object) is a no-op, not an error.
func Remove(reg *Registry, root map[string]any, path string) error {
	segments, err := SplitPath(path)
	if err != nil {
		return err
	}
	if err := validateRoot(reg, segments); err != nil {
		return err
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	delete(current, segments[len(segments)-1])
	return nil
}
