package config

// Merge combines raw scope configs, given lowest precedence first, into one
// effective config. Each top-level key follows its registry merge policy;
// keys absent from every scope take the registry default. Merge is pure:
// inputs are never aliased or mutated, and identical inputs always produce
// identical output.
func Merge(reg *Registry, scopes ...map[string]any) map[string]any {
	result := make(map[string]any)

	// Registry defaults form the implicit lowest-precedence layer.
	for _, key := range reg.Keys() {
		if def, ok := reg.DefaultValue(key); ok && def != nil {
			result[key] = def
		}
	}

	for _, scope := range scopes {
		for key, val := range scope {
			if reg.MergePolicyFor(key) == PolicyObject {
				result[key] = mergeValue(result[key], val)
				continue
			}
			result[key] = cloneValue(val)
		}
	}

	return result
}

// mergeValue merges one object-policy value. Both sides must be objects for
// a recursive merge; any non-object side degrades to scalar replacement.
func mergeValue(base, overlay any) any {
	baseMap, baseOK := base.(map[string]any)
	overlayMap, overlayOK := overlay.(map[string]any)
	if !baseOK || !overlayOK {
		return cloneValue(overlay)
	}
	return deepMerge(baseMap, overlayMap)
}

// deepMerge recursively merges overlay into a copy of base. Keys present in
// only one side pass through unchanged; keys present in both recurse when
// both sides are objects, otherwise the overlay value replaces wholesale.
func deepMerge(base, overlay map[string]any) map[string]any {
	result := cloneMap(base)
	for key, overlayVal := range overlay {
		baseVal, exists := result[key]
		if !exists {
			result[key] = cloneValue(overlayVal)
			continue
		}
		result[key] = mergeValue(baseVal, overlayVal)
	}
	return result
}

// Clone creates a deep copy of a raw config object.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	return cloneMap(src)
}

// cloneValue creates a deep copy of a JSON-shaped value.
func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	default:
		return val
	}
}

// cloneMap creates a deep copy of a map.
func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = cloneValue(val)
	}
	return dst
}

// cloneSlice creates a deep copy of a slice.
func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, val := range src {
		dst[i] = cloneValue(val)
	}
	return dst
}
