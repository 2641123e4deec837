package termaidir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_PathAccessors(t *testing.T) {
	d := New("/home/user/.local/share/termai")

	assert.Equal(t, "/home/user/.local/share/termai", d.Root())
	assert.Equal(t, "/home/user/.local/share/termai/config.json", d.ConfigPath())
	assert.Equal(t, "/home/user/.local/share/termai/key", d.LegacyKeyPath())
	assert.Equal(t, "/home/user/.local/share/termai/key.bak", d.LegacyKeyBackupPath())
}

func TestDir_Exists(t *testing.T) {
	tmp := t.TempDir()

	d := New(filepath.Join(tmp, "missing"))
	assert.False(t, d.Exists())

	d = New(tmp)
	assert.True(t, d.Exists())
}

func TestEnsureStructure(t *testing.T) {
	tmp := t.TempDir()
	d := New(filepath.Join(tmp, "nested", "termai"))

	require.NoError(t, EnsureStructure(d))

	info, err := os.Stat(d.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, EnsureStructure(d))
}

func TestMigrateLegacyKey(t *testing.T) {
	tmp := t.TempDir()
	d := New(tmp)

	require.NoError(t, os.WriteFile(d.LegacyKeyPath(), []byte("  secret-key\n"), 0o600))

	key, migrated, err := MigrateLegacyKey(d)
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, "secret-key", key)

	// Original path is gone, backup holds the raw content.
	_, err = os.Stat(d.LegacyKeyPath())
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(d.LegacyKeyBackupPath())
	require.NoError(t, err)
	assert.Equal(t, "  secret-key\n", string(data))
}

func TestMigrateLegacyKey_NoLegacyFile(t *testing.T) {
	d := New(t.TempDir())

	key, migrated, err := MigrateLegacyKey(d)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Empty(t, key)
}
