package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	v, err := Load(t.TempDir(), "missing", map[string]any{"id.profile": "strict"})
	require.NoError(t, err)
	assert.Equal(t, "strict", v.GetString("id.profile"))
}

func TestLoadReadsYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := "id:\n  profile: unbounded\nserver:\n  port: 9000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pxid.yaml"), []byte(body), 0o600))

	t.Setenv("SERVER_PORT", "9100")

	v, err := Load(dir, "pxid", map[string]any{"server.port": 8090, "id.profile": "permissive"})
	require.NoError(t, err)
	assert.Equal(t, "unbounded", v.GetString("id.profile"))
	assert.Equal(t, 9100, v.GetInt("server.port"))
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pxid.yaml"), []byte("id: [unclosed"), 0o600))

	_, err := Load(dir, "pxid", nil)
	assert.Error(t, err)
}
