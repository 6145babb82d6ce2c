package catalog

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"

	"bms-asset-manager/core/source"
)

// Entity types modeled by this tool. Other types (squadrons, units, ...)
// carry no 3D asset and are skipped without a warning.
const (
	entityTypeFeature = 1
	entityTypeVehicle = 5
	entityTypeWeapon  = 6
)

// Class table file names expected next to the catalog.
const (
	featureTableFile = "Falcon4_FCD.xml"
	vehicleTableFile = "Falcon4_VCD.xml"
	weaponTableFile  = "Falcon4_WCD.xml"
)

// ctFile mirrors the catalog XML layout.
type ctFile struct {
	XMLName xml.Name
	Entries []ctEntry `xml:"CT"`
}

type ctEntry struct {
	Num            string `xml:"Num,attr"`
	Name           string `xml:"Name"`
	EntityType     string `xml:"EntityType"`
	EntityIdx      string `xml:"EntityIdx"`
	Normal         string `xml:"GraphicsNormal"`
	Damaged        string `xml:"GraphicsDamaged"`
	Destroyed      string `xml:"GraphicsDestroyed"`
	LeftDestroyed  string `xml:"GraphicsLeftDestroyed"`
	RightDestroyed string `xml:"GraphicsRightDestroyed"`
	BothDestroyed  string `xml:"GraphicsBothDestroyed"`
	Repaired       string `xml:"GraphicsRepaired"`
}

// ParseCatalog reads the XML catalog at path and returns the model records
// it contains. Display names are resolved through the FCD/VCD/WCD class
// tables located in the same directory; a missing class table only degrades
// name resolution, it is not an error.
//
// Rows missing a usable CT number, entity type, or name are skipped and
// reported as warnings. A missing or unreadable catalog file returns a
// source.UnavailableError.
func ParseCatalog(path string) ([]ModelRecord, []source.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, source.Unavailable(path, err)
	}

	var file ctFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, nil, source.Unavailable(path, err)
	}

	dir := filepath.Dir(path)
	tables := map[int]ClassTable{
		entityTypeFeature: loadClassTable(filepath.Join(dir, featureTableFile)),
		entityTypeVehicle: loadClassTable(filepath.Join(dir, vehicleTableFile)),
		entityTypeWeapon:  loadClassTable(filepath.Join(dir, weaponTableFile)),
	}

	base := filepath.Base(path)
	var records []ModelRecord
	var warnings []source.Warning

	for _, entry := range file.Entries {
		num, err := strconv.Atoi(entry.Num)
		if err != nil || num <= 0 {
			warnings = append(warnings, source.Warnf(base, 0, "skipping CT entry with invalid Num %q", entry.Num))
			continue
		}

		entityType, err := strconv.Atoi(entry.EntityType)
		if err != nil {
			warnings = append(warnings, source.Warnf(base, 0, "CT %d: invalid EntityType %q", num, entry.EntityType))
			continue
		}

		category, ok := categoryFor(entityType)
		if !ok {
			// Not a modeled entity type.
			continue
		}

		entityIdx := -1
		if entry.EntityIdx != "" {
			if entityIdx, err = strconv.Atoi(entry.EntityIdx); err != nil {
				warnings = append(warnings, source.Warnf(base, 0, "CT %d: invalid EntityIdx %q", num, entry.EntityIdx))
				continue
			}
		}

		name := entry.Name
		if name == "" {
			name = tables[entityType].Name(entityIdx)
		}
		if name == "" {
			warnings = append(warnings, source.Warnf(base, 0, "CT %d: no resolvable name (EntityIdx %d)", num, entityIdx))
			continue
		}

		record := ModelRecord{
			CTNumber:  num,
			Name:      name,
			Category:  category,
			EntityIdx: entityIdx,
			FilePath:  entry.Normal,
			Variants:  variantsOf(entry),
		}
		records = append(records, record)
	}

	return records, warnings, nil
}

func categoryFor(entityType int) (string, bool) {
	switch entityType {
	case entityTypeFeature:
		return CategoryFeature, true
	case entityTypeVehicle:
		return CategoryVehicle, true
	case entityTypeWeapon:
		return CategoryWeapon, true
	default:
		return "", false
	}
}

func variantsOf(entry ctEntry) map[string]string {
	slots := map[string]string{
		"Normal":         entry.Normal,
		"Damaged":        entry.Damaged,
		"Destroyed":      entry.Destroyed,
		"LeftDestroyed":  entry.LeftDestroyed,
		"RightDestroyed": entry.RightDestroyed,
		"BothDestroyed":  entry.BothDestroyed,
		"Repaired":       entry.Repaired,
	}
	variants := make(map[string]string)
	for slot, ref := range slots {
		if ref != "" {
			variants[slot] = ref
		}
	}
	if len(variants) == 0 {
		return nil
	}
	return variants
}
