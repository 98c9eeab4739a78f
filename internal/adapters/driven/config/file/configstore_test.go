package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestConfig(t)

	require.NoError(t, store.Set("vault.dir", "/tmp/vault"))
	require.NoError(t, store.Set("scrape.limit", 25))
	require.NoError(t, store.Set("scrape.dry_run", true))

	assert.Equal(t, "/tmp/vault", store.GetString("vault.dir"))
	assert.Equal(t, 25, store.GetInt("scrape.limit"))
	assert.True(t, store.GetBool("scrape.dry_run"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store := newTestConfig(t)

	require.NoError(t, store.Set("key", "not an int"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("github.token", "ghp_example"))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "ghp_example", second.GetString("github.token"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[github]\ntoken = \"ghp_x\"\n\n[web]\nurls = [\"https://a\", \"https://b\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "ghp_x", store.GetString("github.token"))
	assert.Equal(t, []string{"https://a", "https://b"}, store.GetStringSlice("web.urls"))
}

func TestConfigStore_RestrictedPermissions(t *testing.T) {
	store := newTestConfig(t)
	require.NoError(t, store.Set("github.token", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
