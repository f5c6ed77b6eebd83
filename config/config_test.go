package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Listen)
	assert.Equal(t, "./data/verdetech.db", cfg.DatabasePath)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	assert.Empty(t, cfg.AdminEmail)
	assert.False(t, cfg.Debug)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `listen: "127.0.0.1:8080"
database_path: "/tmp/test.db"
session_key: "file-secret"
admin_email: "  Gestor@VerdeTech.com "
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "file-secret", cfg.SessionKey)
	// The admin identifier is case-normalized like every login identifier.
	assert.Equal(t, "gestor@verdetech.com", cfg.AdminEmail)
	assert.True(t, cfg.Debug)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VERDETECH_LISTEN", "127.0.0.1:9999")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Listen)
}

func TestLoadRejectsEmptySessionKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`session_key: ""`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}
