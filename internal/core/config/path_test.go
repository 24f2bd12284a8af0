package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplitPath_RejectsMalformedPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{"SingleSegment_IsValid", "model", true},
		{"NestedPath_IsValid", "commit.style", true},
		{"EmptyPath_IsRejected", "", false},
		{"LeadingDot_IsRejected", ".model", false},
		{"TrailingDot_IsRejected", "model.", false},
		{"DoubleDot_IsRejected", "commit..style", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitPath(tt.path)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var pathErr *PathError
				require.ErrorAs(t, err, &pathErr)
				assert.Equal(t, tt.path, pathErr.Path)
			}
		})
	}
}

func TestGet_MissingLeafIsNotAnError(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{
		"commit": map[string]any{"style": "conventional"},
	}

	tests := []struct {
		name  string
		path  string
		want  any
		found bool
	}{
		{"PresentLeaf_IsFound", "commit.style", "conventional", true},
		{"MissingLeaf_NotFound", "commit.missing", nil, false},
		{"MissingTopLevel_NotFound", "model", nil, false},
		{"ThroughScalar_NotFound", "commit.style.deeper", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, found, err := Get(reg, root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, val)
		})
	}
}

func TestPathOperations_RejectUnregisteredRoot(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{}

	_, _, err := Get(reg, root, "bogus.path")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "bogus", valErr.Key)

	err = Set(reg, root, "bogus.path", 1)
	require.ErrorAs(t, err, &valErr)

	err = Remove(reg, root, "bogus.path")
	require.ErrorAs(t, err, &valErr)
	assert.Empty(t, root, "failed operations must not touch the config")
}

func TestPathOperations_ExtensionNamespaceIsUnchecked(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{}

	require.NoError(t, Set(reg, root, "extensions.agentA.anything.goes", true))

	val, found, err := Get(reg, root, "extensions.agentA.anything.goes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, true, val)
}

func TestSet_CreatesIntermediateObjects(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{}

	require.NoError(t, Set(reg, root, "commit.template.header", "feat"))

	commit := root["commit"].(map[string]any)
	template := commit["template"].(map[string]any)
	assert.Equal(t, "feat", template["header"])
}

func TestSet_OverwritesNonObjectIntermediate(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{"commit": "plain"}

	require.NoError(t, Set(reg, root, "commit.style", "conventional"))

	commit, ok := root["commit"].(map[string]any)
	require.True(t, ok, "scalar intermediate should be replaced by a fresh object")
	assert.Equal(t, "conventional", commit["style"])
}

func TestRemove_DeletesLeaf(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{
		"commit": map[string]any{"style": "plain", "include_body": true},
	}

	require.NoError(t, Remove(reg, root, "commit.style"))

	commit := root["commit"].(map[string]any)
	_, exists := commit["style"]
	assert.False(t, exists)
	assert.Equal(t, true, commit["include_body"])
}

func TestRemove_MissingParentIsNoOp(t *testing.T) {
	reg := NewRegistry()
	root := map[string]any{}

	assert.NoError(t, Remove(reg, root, "commit.template.header"))
	assert.Empty(t, root)
}

func TestSetGet_RoundTrip_Property(t *testing.T) {
	reg := NewRegistry()

	rapid.Check(t, func(t *rapid.T) {
		root := map[string]any{}
		depth := rapid.IntRange(1, 5).Draw(t, "depth")
		segments := make([]string, depth+1)
		segments[0] = ExtensionKey
		for i := 1; i <= depth; i++ {
			segments[i] = rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "segment")
		}
		path := segments[0]
		for _, seg := range segments[1:] {
			path += "." + seg
		}
		value := extensionValue(2).Draw(t, "value")

		require.NoError(t, Set(reg, root, path, value))

		got, found, err := Get(reg, root, path)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, value, got)

		require.NoError(t, Remove(reg, root, path))
		_, found, err = Get(reg, root, path)
		require.NoError(t, err)
		require.False(t, found, "a removed leaf must read as not found")
	})
}
