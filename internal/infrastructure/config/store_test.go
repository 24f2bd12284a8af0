package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "commitkit.dev/cli/internal/core/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(
		filepath.Join(dir, "global", "config.json"),
		filepath.Join(dir, ".commitkit.json"),
	)
}

func TestStore_Load_AbsentFileYieldsEmptyConfig(t *testing.T) {
	store := newTestStore(t)

	raw, err := store.Load(coreconfig.ScopeGlobal)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestStore_Load_MalformedJSONYieldsParseError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(coreconfig.ScopeProject), []byte("{not json"), 0o644))

	_, err := store.Load(coreconfig.ScopeProject)

	var parseErr *coreconfig.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, coreconfig.ScopeProject, parseErr.Scope)
}

func TestStore_Load_NonObjectTopLevelYieldsParseError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(coreconfig.ScopeProject), []byte(`[1,2,3]`), 0o644))

	_, err := store.Load(coreconfig.ScopeProject)

	var parseErr *coreconfig.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, coreconfig.ScopeProject, parseErr.Scope)
}

func TestStore_Persist_RoundTrips(t *testing.T) {
	store := newTestStore(t)

	raw := map[string]any{
		"model": "gpt-4",
		"commit": map[string]any{
			"style": "conventional",
		},
	}
	require.NoError(t, store.Persist(coreconfig.ScopeGlobal, raw))

	loaded, err := store.Load(coreconfig.ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, raw, loaded)
}

func TestStore_Persist_CreatesParentDirectory(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Persist(coreconfig.ScopeGlobal, map[string]any{"debug": true}))

	_, err := os.Stat(store.Path(coreconfig.ScopeGlobal))
	assert.NoError(t, err)
}

func TestStore_Persist_LeavesNoTempFilesBehind(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Persist(coreconfig.ScopeProject, map[string]any{"model": "x"}))

	entries, err := os.ReadDir(filepath.Dir(store.Path(coreconfig.ScopeProject)))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}

func TestDefaultStore_HonorsConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CK_CONFIG_DIR", dir)

	store := DefaultStore(t.TempDir())
	assert.Equal(t, filepath.Join(dir, "config.json"), store.Path(coreconfig.ScopeGlobal))
}
