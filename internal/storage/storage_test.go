package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreRoundTrip(t *testing.T) {
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	kv := NewKVStore(db)

	_, ok, err := kv.Get("bankUser")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("bankUser", []byte(`{"id":"1"}`)))
	require.NoError(t, kv.Set("bankUser", []byte(`{"id":"2"}`)))

	v, ok, err := kv.Get("bankUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"2"}`, string(v))

	require.NoError(t, kv.Delete("bankUser"))
	require.NoError(t, kv.Delete("bankUser"))
	_, ok, err = kv.Get("bankUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := OpenDB(dir)
	require.NoError(t, err)
	require.NoError(t, NewKVStore(db).Set("bankUser", []byte("cached")))
	require.NoError(t, db.Close())

	db, err = OpenDB(dir)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewKVStore(db).Get("bankUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "cached", string(v))
	assert.Equal(t, filepath.Join(dir, "xbank.db"), db.Path())
}

func TestLoadConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
	assert.Equal(t, DefaultMaxHistory, cfg.MaxHistory)
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	again, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Locale, again.Locale)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "theme = \"nord\"\nlocale = \"en\"\nmax_history = 0\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultMaxHistory, cfg.MaxHistory, "non-positive bound falls back to the default")
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = "), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfigUpdateKeepsOverridesOutOfFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	// Command-line overrides live only in the loaded value.
	cfg.MaxHistory = 3
	cfg.LogLevel = "debug"

	require.NoError(t, cfg.Update(func(c *Config) { c.Theme = "nord" }))
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, 3, cfg.MaxHistory)

	onDisk, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "nord", onDisk.Theme)
	assert.Equal(t, DefaultMaxHistory, onDisk.MaxHistory)
	assert.Equal(t, "info", onDisk.LogLevel)
}
