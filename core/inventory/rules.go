package inventory

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bms-asset-manager/core/source"
	"gopkg.in/yaml.v3"
)

// SuffixRule classifies a file-name suffix.
type SuffixRule struct {
	// Channel is the material channel the suffix marks (e.g. "Normal").
	Channel string `yaml:"channel"`

	// PBR marks the suffix as part of a PBR channel set. Legacy markers
	// like "_d" (diffuse) keep PBR false.
	PBR bool `yaml:"pbr"`
}

// RuleSet is the configurable classification table for texture files.
// It can be loaded from a YAML file so that naming-convention changes do
// not require a rebuild.
type RuleSet struct {
	// Extensions lists the recognized texture file extensions, with dot.
	Extensions []string `yaml:"extensions"`

	// Suffixes maps a name suffix (e.g. "_normal") to its rule.
	Suffixes map[string]SuffixRule `yaml:"suffixes"`
}

// DefaultRules returns the BMS 4.37-era convention: DDS textures with
// "_normal"/"_armw" PBR channel markers plus the common standalone channel
// suffixes, and "_d" as the legacy diffuse marker.
func DefaultRules() RuleSet {
	return RuleSet{
		Extensions: []string{".dds"},
		Suffixes: map[string]SuffixRule{
			"_normal":    {Channel: "Normal", PBR: true},
			"_armw":      {Channel: "ARMW", PBR: true},
			"_albedo":    {Channel: "Albedo", PBR: true},
			"_roughness": {Channel: "Roughness", PBR: true},
			"_metallic":  {Channel: "Metallic", PBR: true},
			"_emission":  {Channel: "Emission", PBR: true},
			"_d":         {Channel: "Diffuse", PBR: false},
		},
	}
}

// LoadRules reads a RuleSet from a YAML file. A section the file sets
// replaces the built-in one wholesale, so a rules file can retire a
// default suffix, not just add to the table. Sections the file omits keep
// their defaults.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, source.Unavailable(path, err)
	}

	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, source.Unavailable(path, err)
	}
	defaults := DefaultRules()
	if len(rules.Extensions) == 0 {
		rules.Extensions = defaults.Extensions
	}
	if len(rules.Suffixes) == 0 {
		rules.Suffixes = defaults.Suffixes
	}
	return rules, nil
}

// Classify splits a file name into its matching base, channel, and PBR
// flag. ok is false when the extension is not a recognized texture
// extension. Matching is case-insensitive; the longest suffix wins so
// "_normal" beats a hypothetical "_l" rule.
func (r RuleSet) Classify(fileName string) (base, channel string, pbr, ok bool) {
	lower := strings.ToLower(filepath.Base(fileName))

	ext := filepath.Ext(lower)
	if !r.recognizedExtension(ext) {
		return "", "", false, false
	}
	stem := strings.TrimSuffix(lower, ext)

	for _, suffix := range r.suffixesByLength() {
		if strings.HasSuffix(stem, suffix) && len(stem) > len(suffix) {
			rule := r.Suffixes[suffix]
			return strings.TrimSuffix(stem, suffix), rule.Channel, rule.PBR, true
		}
	}
	return stem, "", false, true
}

// NormalizeRef reduces a texture reference from model material data to the
// same base key Classify produces: lowercased, extension and any known
// channel suffix stripped.
func (r RuleSet) NormalizeRef(ref string) string {
	lower := strings.ToLower(strings.TrimSpace(ref))
	lower = strings.ReplaceAll(lower, "\\", "/")
	lower = lower[strings.LastIndex(lower, "/")+1:]

	if ext := filepath.Ext(lower); r.recognizedExtension(ext) {
		lower = strings.TrimSuffix(lower, ext)
	}
	for _, suffix := range r.suffixesByLength() {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			return strings.TrimSuffix(lower, suffix)
		}
	}
	return lower
}

func (r RuleSet) recognizedExtension(ext string) bool {
	for _, known := range r.Extensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

func (r RuleSet) suffixesByLength() []string {
	suffixes := make([]string, 0, len(r.Suffixes))
	for suffix := range r.Suffixes {
		suffixes = append(suffixes, suffix)
	}
	sort.Slice(suffixes, func(i, j int) bool {
		if len(suffixes[i]) != len(suffixes[j]) {
			return len(suffixes[i]) > len(suffixes[j])
		}
		return suffixes[i] < suffixes[j]
	})
	return suffixes
}
