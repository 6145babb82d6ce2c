package catalog

import "strings"

// Model categories derived from the catalog's EntityType field.
// Cockpit records come from the cockpit definition files instead.
const (
	CategoryFeature = "Feature"
	CategoryVehicle = "Vehicle"
	CategoryWeapon  = "Weapon"
	CategoryCockpit = "Cockpit"
)

// Graphics slot names, in catalog order. A model may reference a different
// parent model for each slot.
var VariantSlots = []string{
	"Normal", "Damaged", "Destroyed", "LeftDestroyed",
	"RightDestroyed", "BothDestroyed", "Repaired",
}

// ModelRecord is a raw catalog entry before reconciliation.
type ModelRecord struct {
	// CTNumber is the catalog identifier. Zero for cockpit records, which
	// are identified by name only.
	CTNumber int `json:"ct_number"`

	// Name is the display name resolved from the class tables (or inline).
	Name string `json:"name"`

	// Category is one of the Category* constants.
	Category string `json:"category"`

	// EntityIdx is the index into the per-category class table.
	EntityIdx int `json:"entity_idx"`

	// FilePath is the graphics reference for the normal (undamaged) model.
	FilePath string `json:"file_path"`

	// Variants maps a graphics slot name to its model reference.
	// The "Normal" slot duplicates FilePath when present.
	Variants map[string]string `json:"variants,omitempty"`
}

// Key returns the case-normalized identity used to join this record against
// the relationship report and the texture inventory.
func (r ModelRecord) Key() string {
	return NormalizeKey(r.Name)
}

// RelationRecord is one block from the relationship report.
type RelationRecord struct {
	// Line is the 1-based line number of the block's "Model:" line.
	Line int `json:"line"`

	// Model is the child model name as written in the report.
	Model string `json:"model"`

	// Parent is the parent model name, empty when the model is a root.
	Parent string `json:"parent,omitempty"`

	// BMLVersion is the model format version, or 0 when the report omits it.
	BMLVersion int `json:"bml_version,omitempty"`

	// Textures lists the texture names the model references.
	Textures []string `json:"textures,omitempty"`
}

// MaterialRef is a single texture reference extracted from a materials.mtl
// file, with the channel its slot maps to.
type MaterialRef struct {
	Texture string `json:"texture"`
	Channel string `json:"channel"`
}

// NormalizeKey lowercases and trims a name so that the inconsistently cased
// source formats join on the same key.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
