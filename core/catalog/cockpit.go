package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bms-asset-manager/core/source"
)

// 3dCkpit.dat model directives and the cockpit part they describe.
var cockpitDirectives = map[string]string{
	"cockpitmodel":          "Cockpit",
	"cockpitmodel2":         "Switches and Knobs",
	"cockpithudmodel":       "HUD and Glass",
	"cockpitcanopymodel":    "Canopy",
	"cockpitrttcanopymodel": "Additional Canopy",
}

// ParseCockpits loads cockpit model records from the aircraft data files.
// Each *.txtpb under acdataDir names a cockpit; the matching
// ckptArtDir/<name>/3dCkpit.dat lists its model references. Cockpit records
// have no CT number and are identified by name.
//
// Both directories are optional inputs: if either is missing the parse
// yields a warning and no records, since many installs ship without
// cockpit art.
func ParseCockpits(acdataDir, ckptArtDir string) ([]ModelRecord, []source.Warning, error) {
	matches, err := filepath.Glob(filepath.Join(acdataDir, "*.txtpb"))
	if err != nil || len(matches) == 0 {
		if _, statErr := os.Stat(acdataDir); statErr != nil {
			return nil, []source.Warning{source.Warnf(acdataDir, 0, "aircraft data directory not found, skipping cockpits")}, nil
		}
		return nil, nil, nil
	}
	if _, err := os.Stat(ckptArtDir); err != nil {
		return nil, []source.Warning{source.Warnf(ckptArtDir, 0, "cockpit art directory not found, skipping cockpits")}, nil
	}

	var records []ModelRecord
	var warnings []source.Warning

	for _, acFile := range matches {
		name, wingsRef, warns := parseAircraftData(acFile)
		warnings = append(warnings, warns...)
		if name == "" {
			continue
		}

		datPath := filepath.Join(ckptArtDir, name, "3dCkpit.dat")
		parts, warns, err := parseCockpitDat(datPath)
		warnings = append(warnings, warns...)
		if err != nil {
			warnings = append(warnings, source.Warnf(datPath, 0, "missing 3dCkpit.dat for cockpit %q", name))
			continue
		}

		if wingsRef != "" {
			parts = append(parts, cockpitPart{Label: "Cockpit Wings", Ref: wingsRef})
		}

		for _, part := range parts {
			records = append(records, ModelRecord{
				Name:     name + " " + part.Label,
				Category: CategoryCockpit,
				FilePath: part.Ref,
			})
		}
	}

	return records, warnings, nil
}

type cockpitPart struct {
	Label string
	Ref   string
}

// parseAircraftData extracts cockpit_name and cockpit_wings_parent from a
// *.txtpb aircraft data file.
func parseAircraftData(path string) (name, wingsRef string, warnings []source.Warning) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", []source.Warning{source.Warnf(path, 0, "unreadable aircraft data: %v", err)}
	}
	defer f.Close()

	base := filepath.Base(path)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.Contains(line, "cockpit_name"):
			if quoted := extractQuoted(line); quoted != "" {
				name = quoted
			} else {
				warnings = append(warnings, source.Warnf(base, lineNo, "cockpit_name without quoted value"))
			}
		case strings.Contains(line, "cockpit_wings_parent"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			if _, err := strconv.Atoi(fields[len(fields)-1]); err != nil {
				warnings = append(warnings, source.Warnf(base, lineNo, "invalid cockpit_wings_parent %q", fields[len(fields)-1]))
				continue
			}
			wingsRef = fields[len(fields)-1]
		}
	}
	return name, wingsRef, warnings
}

// parseCockpitDat extracts model directives from a 3dCkpit.dat file.
func parseCockpitDat(path string) ([]cockpitPart, []source.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	var parts []cockpitPart
	var warnings []source.Warning

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		label, ok := cockpitDirectives[fields[0]]
		if !ok {
			continue
		}
		ref := strings.TrimSuffix(fields[1], ";")
		if _, err := strconv.Atoi(ref); err != nil {
			warnings = append(warnings, source.Warnf(base, lineNo, "invalid %s reference %q", fields[0], fields[1]))
			continue
		}
		parts = append(parts, cockpitPart{Label: label, Ref: ref})
	}
	return parts, warnings, nil
}

func extractQuoted(line string) string {
	first := strings.Index(line, `"`)
	if first < 0 {
		return ""
	}
	rest := line[first+1:]
	second := strings.Index(rest, `"`)
	if second < 0 {
		return ""
	}
	return rest[:second]
}
