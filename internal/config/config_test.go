package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TOOLCHAT_ADDR", "TOOLCHAT_MODEL", "TOOLCHAT_BASE_URL",
		"GEMINI_API_KEY", "TOOLCHAT_LOG_LEVEL", "TOOLCHAT_MAX_TOOL_CALLS",
		"TOOLCHAT_COMPLETION_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.MaxToolCalls)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "toolchat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9090\"\nmodel: file-model\nmax_tool_calls: 3\n"), 0o644))

	t.Setenv("TOOLCHAT_MODEL", "env-model")
	t.Setenv("GEMINI_API_KEY", "sekrit")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr) // file wins over default
	assert.Equal(t, "env-model", cfg.Model)  // env wins over file
	assert.Equal(t, 3, cfg.MaxToolCalls)
	assert.Equal(t, "sekrit", cfg.APIKey)
}

func TestLoad_APIKeyNeverFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "toolchat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apikey: leaked\napi_key: leaked\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_RejectsNonPositiveBudget(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOOLCHAT_MAX_TOOL_CALLS", "0")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
