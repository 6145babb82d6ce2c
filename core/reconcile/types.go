package reconcile

import (
	"time"

	"bms-asset-manager/core/catalog"
	"bms-asset-manager/core/inventory"
	"bms-asset-manager/core/source"

	"github.com/google/uuid"
)

// ModelEntry is a reconciled catalog entry. Entries are immutable once the
// UnifiedModel is built.
type ModelEntry struct {
	// Key is the case-normalized name all sources join on.
	Key string `json:"key"`

	// Name is the display name as written in the catalog.
	Name string `json:"name"`

	// CTNumber is the catalog identifier, 0 for cockpit entries.
	CTNumber int `json:"ct_number"`

	// Category is one of the catalog.Category* constants.
	Category string `json:"category"`

	// BMLVersions collects the model format versions seen across the
	// entry's relation records, sorted ascending.
	BMLVersions []int `json:"bml_versions,omitempty"`

	// FilePath is the graphics reference for the normal model state.
	FilePath string `json:"file_path,omitempty"`

	// Variants maps a graphics slot name to its model reference.
	Variants map[string]string `json:"variants,omitempty"`
}

// ParentRelation is one child-to-parent edge from the relationship report,
// retained raw even when one end dangles or the edge is part of a cycle.
type ParentRelation struct {
	// Child and Parent are the names as written in the report.
	Child  string `json:"child"`
	Parent string `json:"parent"`

	// ChildKey and ParentKey are the normalized join keys.
	ChildKey  string `json:"child_key"`
	ParentKey string `json:"parent_key"`

	// Line is the report line the relation came from.
	Line int `json:"line"`

	// Cyclic marks relations excluded from hierarchy traversal because
	// they close a parent cycle. The raw data is kept.
	Cyclic bool `json:"cyclic,omitempty"`
}

// TextureUsage is one model-to-texture edge. Missing marks edges whose
// texture was referenced but not found on disk; the edge points at a
// phantom inventory.Record with Exists false.
type TextureUsage struct {
	Model   string `json:"model"`
	Texture string `json:"texture"`
	Missing bool   `json:"missing,omitempty"`
}

// InconsistencyKind enumerates the data-level problems reconciliation
// detects. These are results, never errors.
type InconsistencyKind string

const (
	// InconsistencyDanglingParent is a relation whose child or parent does
	// not resolve to a catalog entry.
	InconsistencyDanglingParent InconsistencyKind = "dangling_parent"

	// InconsistencyConflictingParent is a second parent claimed for a
	// child that already has one; the first relation wins.
	InconsistencyConflictingParent InconsistencyKind = "conflicting_parent"

	// InconsistencyMissingTexture is a texture referenced by a model but
	// absent from both inventory directories.
	InconsistencyMissingTexture InconsistencyKind = "missing_texture"

	// InconsistencyCyclicRelation is a parent chain that closes on itself.
	InconsistencyCyclicRelation InconsistencyKind = "cyclic_relation"

	// InconsistencyUnusedTexture is a texture present on disk but
	// referenced by no model.
	InconsistencyUnusedTexture InconsistencyKind = "unused_texture"

	// InconsistencyDuplicateModel is a catalog entry whose key collides
	// with an earlier entry; the first entry wins.
	InconsistencyDuplicateModel InconsistencyKind = "duplicate_model"
)

// Inconsistency describes one detected data problem.
type Inconsistency struct {
	Kind    InconsistencyKind `json:"kind"`
	Subject string            `json:"subject"`
	Detail  string            `json:"detail"`
}

// Input bundles the three raw sources plus the optional enrichment data
// for one reconciliation pass.
type Input struct {
	// Models are the parsed catalog entries (including cockpit records).
	Models []catalog.ModelRecord

	// Relations are the parsed relationship report blocks.
	Relations []catalog.RelationRecord

	// Textures is the filesystem inventory.
	Textures []inventory.Record

	// Materials holds material-file texture references keyed by
	// normalized model name. Optional.
	Materials map[string][]catalog.MaterialRef

	// Rules is the classification table used to normalize texture
	// references for matching. Zero value falls back to DefaultRules.
	Rules inventory.RuleSet

	// Warnings carries parse-stage warnings through to the built model so
	// the presentation layer can display them with the data they concern.
	Warnings []source.Warning
}

// UnifiedModel is the aggregate built by one reconciliation pass. It is
// immutable after Reconcile returns and is replaced wholesale on reload.
type UnifiedModel struct {
	// ID identifies this load cycle.
	ID uuid.UUID `json:"id"`

	// BuiltAt is when reconciliation finished.
	BuiltAt time.Time `json:"built_at"`

	// Models indexes reconciled entries by key.
	Models map[string]ModelEntry `json:"models"`

	// Relations holds every parsed relation, including dangling and
	// cyclic ones.
	Relations []ParentRelation `json:"relations"`

	// Parents maps child key to parent key over the resolved, cycle-free
	// subset of Relations. Hierarchy traversal uses only this map.
	Parents map[string]string `json:"parents"`

	// Textures indexes inventory records (plus phantom records for
	// missing references) by record key.
	Textures map[string]inventory.Record `json:"textures"`

	// Usages holds every model-to-texture edge, sorted.
	Usages []TextureUsage `json:"usages"`

	// UsageByModel and UsageByTexture are the edge set projected both
	// ways: model key to sorted texture record keys, and texture record
	// key to sorted model keys.
	UsageByModel   map[string][]string `json:"-"`
	UsageByTexture map[string][]string `json:"-"`

	// Unused lists texture record keys with zero incoming usage edges,
	// sorted.
	Unused []string `json:"unused"`

	// Inconsistencies enumerates every detected data problem.
	Inconsistencies []Inconsistency `json:"inconsistencies"`

	// Warnings carries the parse-stage warnings for display.
	Warnings []source.Warning `json:"warnings,omitempty"`
}
