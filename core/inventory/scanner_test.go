package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"bms-asset-manager/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTexture(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("dds"), 0o644))
}

func TestScan(t *testing.T) {
	standard := t.TempDir()
	highres := t.TempDir()

	writeTexture(t, standard, "tank.dds")
	writeTexture(t, standard, "Tank_Normal.dds")
	writeTexture(t, standard, "notes.txt")
	writeTexture(t, highres, "tank.dds")

	records, err := Scan(standard, highres, DefaultRules())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sorted by key: highres before standard, then by name.
	assert.Equal(t, "highres/tank", records[0].Key())
	assert.Equal(t, "standard/tank", records[1].Key())
	assert.Equal(t, "standard/tank_normal", records[2].Key())

	assert.Equal(t, TierHighRes, records[0].Tier)
	assert.True(t, records[0].Exists)

	normal := records[2]
	assert.Equal(t, "tank", normal.Base)
	assert.Equal(t, "Normal", normal.Channel)
	assert.True(t, normal.PBR)
	assert.Equal(t, filepath.Join(standard, "Tank_Normal.dds"), normal.Path)
}

func TestScanMissingDirectory(t *testing.T) {
	standard := t.TempDir()
	missing := filepath.Join(standard, "nope")

	_, err := Scan(standard, missing, DefaultRules())
	require.Error(t, err)
	assert.True(t, source.IsUnavailable(err))
	assert.Contains(t, err.Error(), missing)
}

func TestScanEmptyDirectories(t *testing.T) {
	records, err := Scan(t.TempDir(), t.TempDir(), DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScanUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	standard := t.TempDir()
	locked := filepath.Join(standard, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	writeTexture(t, locked, "hidden.dds")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := Scan(standard, t.TempDir(), DefaultRules())
	require.Error(t, err)
	assert.True(t, source.IsUnavailable(err))
	// The error names the entry that failed, not the scan root.
	assert.Contains(t, err.Error(), locked)
}

func TestScanNested(t *testing.T) {
	standard := t.TempDir()
	nested := filepath.Join(standard, "weapons")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeTexture(t, nested, "aim120.dds")

	records, err := Scan(standard, t.TempDir(), DefaultRules())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "aim120", records[0].Name)
}
