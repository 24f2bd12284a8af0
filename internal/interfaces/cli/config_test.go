package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "commitkit.dev/cli/internal/core/config"
)

// runCommand executes one CLI invocation with a fresh container, the way
// each real command invocation gets fresh state.
func runCommand(t *testing.T, projectDir string, args ...string) (string, error) {
	t.Helper()
	container := NewCLIContainer(projectDir, false)
	rootCmd := NewRootCommand(container)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func setupDirs(t *testing.T) string {
	t.Helper()
	projectDir := t.TempDir()
	t.Setenv("CK_CONFIG_DIR", filepath.Join(t.TempDir(), "commitkit"))
	return projectDir
}

func TestConfigCommand_SetThenGet_RoundTripsAcrossInvocations(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "extensions.agentA.timeout", "9000")
	require.NoError(t, err)

	out, err := runCommand(t, projectDir, "config", "get", "extensions.agentA.timeout")
	require.NoError(t, err)
	assert.Equal(t, "9000\n", out)
}

func TestConfigCommand_SetGlobal_DoesNotTouchProjectFile(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "--global", "model", "gpt-4")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(projectDir, ".commitkit.json"))
	assert.True(t, os.IsNotExist(statErr))

	out, err := runCommand(t, projectDir, "config", "get", "model")
	require.NoError(t, err)
	assert.Equal(t, "\"gpt-4\"\n", out)
}

func TestConfigCommand_ProjectOverridesGlobal(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "--global", "model", "gpt-4")
	require.NoError(t, err)
	_, err = runCommand(t, projectDir, "config", "set", "model", "claude-sonnet")
	require.NoError(t, err)

	out, err := runCommand(t, projectDir, "config", "get", "model")
	require.NoError(t, err)
	assert.Equal(t, "\"claude-sonnet\"\n", out)
}

func TestConfigCommand_Get_UnknownKeyFails(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "get", "mystery.key")

	var valErr *coreconfig.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "mystery", valErr.Key)
}

func TestConfigCommand_Get_MissingLeafFails(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "get", "extensions.nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no value set")
}

func TestConfigCommand_Unset_RemovesValue(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "extensions.agentA.x", "1")
	require.NoError(t, err)
	_, err = runCommand(t, projectDir, "config", "unset", "extensions.agentA.x")
	require.NoError(t, err)

	_, err = runCommand(t, projectDir, "config", "get", "extensions.agentA.x")
	assert.Error(t, err)
}

func TestConfigCommand_Unset_MissingParentSucceeds(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "unset", "extensions.ghost.leaf")
	assert.NoError(t, err)
}

func TestConfigCommand_ListJSON_ShowsEffectiveConfig(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "language", "fr")
	require.NoError(t, err)

	out, err := runCommand(t, projectDir, "config", "list", "--json")
	require.NoError(t, err)

	var effective map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &effective))
	assert.Equal(t, "fr", effective["language"])
	assert.Equal(t, "gpt-4o-mini", effective["model"], "defaults should fill unset keys")
}

func TestConfigCommand_Path_ListsBothScopes(t *testing.T) {
	projectDir := setupDirs(t)

	out, err := runCommand(t, projectDir, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "global")
	assert.Contains(t, out, "project")
	assert.Contains(t, out, filepath.Join(projectDir, ".commitkit.json"))
}

func TestConfigCommand_Set_ParsesJSONValues(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "extensions.agentA.flags", `{"fast":true}`)
	require.NoError(t, err)

	out, err := runCommand(t, projectDir, "config", "get", "extensions.agentA.flags.fast")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestConfigCommand_Set_FallsBackToStringValues(t *testing.T) {
	projectDir := setupDirs(t)

	_, err := runCommand(t, projectDir, "config", "set", "language", "pt-BR")
	require.NoError(t, err)

	out, err := runCommand(t, projectDir, "config", "get", "language")
	require.NoError(t, err)
	assert.Equal(t, "\"pt-BR\"\n", out)
}

func TestConfigCommand_Load_BrokenProjectFileSurfacesParseError(t *testing.T) {
	projectDir := setupDirs(t)
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".commitkit.json"), []byte("{oops"), 0o644))

	_, err := runCommand(t, projectDir, "config", "list", "--json")

	var parseErr *coreconfig.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, coreconfig.ScopeProject, parseErr.Scope)
}
