package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"bms-asset-manager/core/source"
)

// MaterialsFile is the per-model PBR material definition found inside a
// model directory for BML version 2 models.
const MaterialsFile = "materials.mtl"

// Slot numbers used by materials.mtl.
var slotChannels = map[int]string{
	0: "Albedo",
	1: "ARMW",
	2: "Normal",
	3: "Emission",
}

type mtlFile struct {
	Materials []mtlMaterial `json:"Materials"`
}

type mtlMaterial struct {
	Textures []mtlTexture `json:"Textures"`
}

type mtlTexture struct {
	File string `json:"File"`
	Slot int    `json:"Slot"`
}

// ParseMaterials reads one materials.mtl file and returns its texture
// references, deduplicated by (texture, channel). File entries are reduced
// to a bare texture name: directory prefix and extension stripped.
func ParseMaterials(path string) ([]MaterialRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, source.Unavailable(path, err)
	}

	var file mtlFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, source.Unavailable(path, err)
	}

	seen := make(map[MaterialRef]struct{})
	var refs []MaterialRef
	for _, material := range file.Materials {
		for _, texture := range material.Textures {
			name := materialTextureName(texture.File)
			if name == "" {
				continue
			}
			channel := slotChannels[texture.Slot]
			if channel == "" {
				channel = "Unknown"
			}
			ref := MaterialRef{Texture: name, Channel: channel}
			if _, dup := seen[ref]; dup {
				continue
			}
			seen[ref] = struct{}{}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// ParseMaterialsDir walks modelsDir for <model>/materials.mtl files and
// returns material references keyed by the normalized model directory name.
// An absent modelsDir yields a warning, not an error: material files are an
// optional enrichment source.
func ParseMaterialsDir(modelsDir string) (map[string][]MaterialRef, []source.Warning, error) {
	entries, err := os.ReadDir(modelsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, []source.Warning{source.Warnf(modelsDir, 0, "models directory not found, skipping material data")}, nil
		}
		return nil, nil, source.Unavailable(modelsDir, err)
	}

	refs := make(map[string][]MaterialRef)
	var warnings []source.Warning
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		mtlPath := filepath.Join(modelsDir, entry.Name(), MaterialsFile)
		if _, err := os.Stat(mtlPath); err != nil {
			// BML version 1 model directories have no materials file.
			continue
		}
		parsed, err := ParseMaterials(mtlPath)
		if err != nil {
			warnings = append(warnings, source.Warnf(mtlPath, 0, "unreadable materials file: %v", err))
			continue
		}
		refs[NormalizeKey(entry.Name())] = parsed
	}
	return refs, warnings, nil
}

func materialTextureName(file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	file = strings.ReplaceAll(file, "\\", "/")
	base := file[strings.LastIndex(file, "/")+1:]
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
