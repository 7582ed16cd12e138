// Tests for store lifecycle: open, close, read-only mode, and seeding.
package sqlite

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// setupStore opens a seeded store on a fresh temp directory.
func setupStore(t *testing.T) *Store {
	t.Helper()

	s := New()
	err := s.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Open(t *testing.T) {
	dataDir := t.TempDir()

	s := New()
	config := types.Config{DataDir: dataDir}
	require.NoError(t, s.Open(config))
	defer s.Close()

	_, err := os.Stat(config.DatabasePath())
	assert.NoError(t, err, "database file should exist after open")

	err = s.Open(config)
	assert.ErrorIs(t, err, types.ErrAlreadyOpen)
}

func TestStore_OpenValidatesConfig(t *testing.T) {
	s := New()
	err := s.Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDataDirEmpty)

	err = s.Open(types.Config{DataDir: t.TempDir(), DatabaseFile: "nested/file.db"})
	assert.ErrorIs(t, err, types.ErrDatabaseFileInvalid)
}

func TestStore_Close(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, err := s.GetPreset("diamond")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.ListPresets("")
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	err = s.PutModels("diamond", types.ModelSet{})
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestStore_ReadOnlyRequiresFile(t *testing.T) {
	s := New()
	err := s.Open(types.Config{DataDir: t.TempDir(), ReadOnly: true})
	assert.ErrorIs(t, err, types.ErrDatabaseMissing)
}

func TestStore_ReadOnly(t *testing.T) {
	dataDir := t.TempDir()

	seeded := New()
	require.NoError(t, seeded.Open(types.Config{DataDir: dataDir}))
	require.NoError(t, seeded.Close())

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir, ReadOnly: true}))
	defer s.Close()

	preset, err := s.GetPreset("diamond")
	require.NoError(t, err)
	assert.Equal(t, "Diamond", preset["name"])

	err = s.PutModels("diamond", types.ModelSet{})
	assert.Error(t, err, "writes must fail on a read-only store")
}

func TestStore_SkipSeed(t *testing.T) {
	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: t.TempDir(), SkipSeed: true}))
	defer s.Close()

	count, err := s.CountPresets()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_SeedIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{DataDir: dataDir}

	s := New()
	require.NoError(t, s.Open(config))
	first, err := s.CountPresets()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	require.NoError(t, s.Open(config))
	defer s.Close()
	second, err := s.CountPresets()
	require.NoError(t, err)
	assert.Equal(t, first, second, "reopening must not reseed")
}

func TestStore_BuildInfo(t *testing.T) {
	s := setupStore(t)

	info, err := s.BuildInfo()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, info["schema_version"])
	assert.NotEmpty(t, info["build_id"])
	assert.NotEmpty(t, info["built_at"])
}

func TestNormalizeID(t *testing.T) {
	id, err := normalizeID("  Diamond ")
	require.NoError(t, err)
	assert.Equal(t, "diamond", id)

	_, err = normalizeID("   ")
	assert.True(t, errors.Is(err, types.ErrInvalidID))
}
