package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bms-asset-manager/core/source"
)

// Report keys. Key matching is case-insensitive; "Textures used by LOD0" is
// accepted as a legacy alias for "Textures".
const (
	keyModel      = "model"
	keyParent     = "parent"
	keyBMLVersion = "bml version"
	keyTextures   = "textures"

	legacyTexturesKey = "textures used by lod0"
)

// ParseReport reads the line-oriented relationship report at path. The
// report is a sequence of "Key: value" blocks, each introduced by a
// "Model:" line:
//
//	Model: F-16C
//	Parent: F-16 Base
//	BML Version: 2
//	Textures: f16_body, f16_wing
//
// Lines that do not parse are skipped with a warning carrying the line
// number. A missing or unreadable file returns a source.UnavailableError.
func ParseReport(path string) ([]RelationRecord, []source.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, source.Unavailable(path, err)
	}
	defer f.Close()

	base := filepath.Base(path)

	var (
		records  []RelationRecord
		warnings []source.Warning
		current  *RelationRecord
	)

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			warnings = append(warnings, source.Warnf(base, lineNo, "unparseable line %q", line))
			continue
		}

		switch key {
		case keyModel:
			flush()
			if value == "" {
				warnings = append(warnings, source.Warnf(base, lineNo, "model line with empty name"))
				continue
			}
			current = &RelationRecord{Line: lineNo, Model: value}

		case keyParent:
			if current == nil {
				warnings = append(warnings, source.Warnf(base, lineNo, "parent line outside a model block"))
				continue
			}
			current.Parent = value

		case keyBMLVersion:
			if current == nil {
				warnings = append(warnings, source.Warnf(base, lineNo, "bml version line outside a model block"))
				continue
			}
			version, err := strconv.Atoi(value)
			if err != nil {
				warnings = append(warnings, source.Warnf(base, lineNo, "invalid BML version %q", value))
				continue
			}
			current.BMLVersion = version

		case keyTextures, legacyTexturesKey:
			if current == nil {
				warnings = append(warnings, source.Warnf(base, lineNo, "textures line outside a model block"))
				continue
			}
			current.Textures = append(current.Textures, splitTextureList(value)...)

		default:
			warnings = append(warnings, source.Warnf(base, lineNo, "unknown key %q", key))
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, warnings, source.Unavailable(path, err)
	}

	return records, warnings, nil
}

// splitKeyValue splits "Key: value" at the first colon. The key is
// canonicalized to lowercase with collapsed spacing.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.Join(strings.Fields(line[:idx]), " "))
	value = strings.TrimSpace(line[idx+1:])
	return key, value, true
}

func splitTextureList(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
