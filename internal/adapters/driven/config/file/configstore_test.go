package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("drive.tick_ms", 50))
	require.NoError(t, store.Set("sessions.dir", "/tmp/sessions"))
	require.NoError(t, store.Set("playback.strict", true))

	assert.Equal(t, 50, store.GetInt("drive.tick_ms"))
	assert.Equal(t, "/tmp/sessions", store.GetString("sessions.dir"))
	assert.True(t, store.GetBool("playback.strict"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("drive.key_hold_ms", 200))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 200, reopened.GetInt("drive.key_hold_ms"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	conf := "[drive]\ntick_ms = 25\n\n[playback]\nstrict = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(conf), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 25, store.GetInt("drive.tick_ms"))
	assert.True(t, store.GetBool("playback.strict"))
}

func TestConfigStore_WrongTypeReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("drive.tick_ms", "fast"))
	assert.Equal(t, 0, store.GetInt("drive.tick_ms"))
	assert.False(t, store.GetBool("drive.tick_ms"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
