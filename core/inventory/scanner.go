package inventory

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bms-asset-manager/core/source"
)

// Directory tiers.
const (
	TierStandard = "standard"
	TierHighRes  = "highres"
)

// Record describes one texture file found on disk.
type Record struct {
	// Name is the file name without directory or extension, lowercased.
	Name string `json:"name"`

	// Base is Name with any recognized channel suffix stripped; it is the
	// key texture references join on.
	Base string `json:"base"`

	// Tier is TierStandard or TierHighRes, by source directory.
	Tier string `json:"tier"`

	// Channel is the material channel inferred from the name suffix,
	// empty for plain legacy textures.
	Channel string `json:"channel,omitempty"`

	// PBR marks the record as part of a PBR channel set.
	PBR bool `json:"pbr"`

	// Path is the absolute or configured-relative file path.
	Path string `json:"path"`

	// Exists is true for scanned files. Reconciliation adds phantom
	// records with Exists false for referenced-but-absent textures.
	Exists bool `json:"exists"`
}

// Key returns the identity of the record within one inventory: tier plus
// full name, so a standard and a high-res copy remain distinct records.
func (r Record) Key() string {
	return r.Tier + "/" + r.Name
}

// Scan walks the standard and high-res texture directories and returns one
// Record per recognized texture file, sorted by key for deterministic
// output. Either directory missing is a source.UnavailableError naming the
// path; an empty directory contributes zero records.
func Scan(standardDir, highResDir string, rules RuleSet) ([]Record, error) {
	var records []Record

	for _, dir := range []struct {
		path string
		tier string
	}{
		{standardDir, TierStandard},
		{highResDir, TierHighRes},
	} {
		scanned, err := scanDir(dir.path, dir.tier, rules)
		if err != nil {
			return nil, err
		}
		records = append(records, scanned...)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Key() < records[j].Key()
	})
	return records, nil
}

func scanDir(dir, tier string, rules RuleSet) ([]Record, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, source.Unavailable(dir, err)
	}
	if !info.IsDir() {
		return nil, source.Unavailable(dir, fs.ErrInvalid)
	}

	var records []Record
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Name the entry that failed, not the scan root.
			return source.Unavailable(path, err)
		}
		if entry.IsDir() {
			return nil
		}
		base, channel, pbr, ok := rules.Classify(entry.Name())
		if !ok {
			return nil
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		records = append(records, Record{
			Name:    name,
			Base:    base,
			Tier:    tier,
			Channel: channel,
			PBR:     pbr,
			Path:    path,
			Exists:  true,
		})
		return nil
	})
	if err != nil {
		if source.IsUnavailable(err) {
			return nil, err
		}
		return nil, source.Unavailable(dir, err)
	}
	return records, nil
}
