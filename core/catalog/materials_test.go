package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterials(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, MaterialsFile, `{
		"Materials": [
			{
				"Textures": [
					{"File": "Textures\\f16_body_albedo.dds", "Slot": 0},
					{"File": "f16_body_armw.dds", "Slot": 1},
					{"File": "f16_body_normal.dds", "Slot": 2},
					{"File": "f16_body_albedo.dds", "Slot": 0},
					{"File": "weird.dds", "Slot": 9}
				]
			}
		]
	}`)

	refs, err := ParseMaterials(path)
	require.NoError(t, err)

	// Duplicate albedo entry collapses; slot 9 is kept with Unknown channel.
	require.Len(t, refs, 4)
	assert.Equal(t, MaterialRef{Texture: "f16_body_albedo", Channel: "Albedo"}, refs[0])
	assert.Equal(t, MaterialRef{Texture: "f16_body_armw", Channel: "ARMW"}, refs[1])
	assert.Equal(t, MaterialRef{Texture: "f16_body_normal", Channel: "Normal"}, refs[2])
	assert.Equal(t, MaterialRef{Texture: "weird", Channel: "Unknown"}, refs[3])
}

func TestParseMaterialsDir(t *testing.T) {
	dir := t.TempDir()

	modelDir := filepath.Join(dir, "F-16C")
	require.NoError(t, os.MkdirAll(modelDir, 0o755))
	writeFile(t, modelDir, MaterialsFile, `{
		"Materials": [{"Textures": [{"File": "f16_body.dds", "Slot": 0}]}]
	}`)

	// A model directory without a materials file is a BML 1 model.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "OldModel"), 0o755))

	brokenDir := filepath.Join(dir, "Broken")
	require.NoError(t, os.MkdirAll(brokenDir, 0o755))
	writeFile(t, brokenDir, MaterialsFile, `not json`)

	refs, warnings, err := ParseMaterialsDir(dir)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	require.Len(t, refs, 1)
	assert.Equal(t, "f16_body", refs["f-16c"][0].Texture)
}

func TestParseMaterialsDirAbsent(t *testing.T) {
	refs, warnings, err := ParseMaterialsDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, refs)
	assert.Len(t, warnings, 1)
}
