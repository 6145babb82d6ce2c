package reconcile

import (
	"fmt"
	"sort"
	"time"

	"bms-asset-manager/core/catalog"
	"bms-asset-manager/core/inventory"

	"github.com/google/uuid"
)

// Reconcile joins the three raw sources into a single UnifiedModel. It
// never fails on bad data: dangling references, missing files, duplicate
// entries, and cycles all become Inconsistency records on the result, so
// partial data still renders. Output ordering is deterministic.
func Reconcile(in Input) *UnifiedModel {
	if len(in.Rules.Extensions) == 0 && len(in.Rules.Suffixes) == 0 {
		in.Rules = inventory.DefaultRules()
	}

	m := &UnifiedModel{
		ID:             uuid.New(),
		BuiltAt:        time.Now().UTC(),
		Models:         make(map[string]ModelEntry),
		Parents:        make(map[string]string),
		Textures:       make(map[string]inventory.Record),
		UsageByModel:   make(map[string][]string),
		UsageByTexture: make(map[string][]string),
		Warnings:       in.Warnings,
	}

	indexModels(m, in.Models)
	indexTextures(m, in.Textures)
	resolveRelations(m, in.Relations)
	buildUsages(m, in)
	markUnused(m)
	breakCycles(m)

	sortModel(m)
	return m
}

// indexModels builds the model index by normalized key. The first entry
// for a key wins; later collisions are recorded, not merged, because two
// catalog rows with the same name are a data-integrity problem the author
// should see.
func indexModels(m *UnifiedModel, records []catalog.ModelRecord) {
	for _, record := range records {
		key := record.Key()
		if key == "" {
			continue
		}
		if existing, dup := m.Models[key]; dup {
			m.addInconsistency(InconsistencyDuplicateModel, record.Name,
				fmt.Sprintf("collides with %s entry CT %d", existing.Category, existing.CTNumber))
			continue
		}
		m.Models[key] = ModelEntry{
			Key:      key,
			Name:     record.Name,
			CTNumber: record.CTNumber,
			Category: record.Category,
			FilePath: record.FilePath,
			Variants: record.Variants,
		}
	}
}

func indexTextures(m *UnifiedModel, records []inventory.Record) {
	for _, record := range records {
		m.Textures[record.Key()] = record
	}
}

// resolveRelations resolves both ends of every parent relation against the
// model index and merges per-model report data (BML versions). Unresolved
// ends become inconsistencies; the raw relation is always retained.
func resolveRelations(m *UnifiedModel, records []catalog.RelationRecord) {
	for _, record := range records {
		childKey := catalog.NormalizeKey(record.Model)
		if entry, ok := m.Models[childKey]; ok && record.BMLVersion != 0 {
			entry.BMLVersions = mergeVersion(entry.BMLVersions, record.BMLVersion)
			m.Models[childKey] = entry
		}

		if record.Parent == "" {
			continue
		}

		relation := ParentRelation{
			Child:     record.Model,
			Parent:    record.Parent,
			ChildKey:  childKey,
			ParentKey: catalog.NormalizeKey(record.Parent),
			Line:      record.Line,
		}
		m.Relations = append(m.Relations, relation)

		_, childOK := m.Models[relation.ChildKey]
		_, parentOK := m.Models[relation.ParentKey]
		if !childOK {
			m.addInconsistency(InconsistencyDanglingParent, record.Model,
				fmt.Sprintf("child of relation at line %d is not in the catalog", record.Line))
		}
		if !parentOK {
			m.addInconsistency(InconsistencyDanglingParent, record.Parent,
				fmt.Sprintf("parent of %s (line %d) is not in the catalog", record.Model, record.Line))
		}
		if !childOK || !parentOK {
			continue
		}

		if existing, claimed := m.Parents[relation.ChildKey]; claimed {
			if existing != relation.ParentKey {
				m.addInconsistency(InconsistencyConflictingParent, record.Model,
					fmt.Sprintf("already has parent %s, ignoring %s (line %d)", existing, record.Parent, record.Line))
			}
			continue
		}
		m.Parents[relation.ChildKey] = relation.ParentKey
	}
}

// buildUsages matches texture references from the report and material data
// against the inventory and builds the usage edge set. An explicit
// reference with no matching file yields a phantom record, a missing-
// flagged edge, and a missing-texture inconsistency. As a convention
// fallback, a model whose own name matches a texture base gets an edge
// too, but never a missing flag: the convention is opportunistic.
func buildUsages(m *UnifiedModel, in Input) {
	byBase := make(map[string][]string)
	for key, record := range m.Textures {
		byBase[record.Base] = append(byBase[record.Base], key)
	}

	type edge struct{ model, texture string }
	edges := make(map[edge]bool) // value: missing flag

	explicit := func(modelKey, ref string) {
		base := in.Rules.NormalizeRef(ref)
		if base == "" {
			return
		}
		keys, found := byBase[base]
		if !found {
			phantom := inventory.Record{
				Name:   base,
				Base:   base,
				Tier:   inventory.TierStandard,
				Exists: false,
			}
			key := phantom.Key()
			if _, dup := m.Textures[key]; !dup {
				m.Textures[key] = phantom
				m.addInconsistency(InconsistencyMissingTexture, ref,
					fmt.Sprintf("referenced by %s but absent from both texture directories", modelKey))
			}
			byBase[base] = []string{key}
			keys = byBase[base]
		}
		for _, key := range keys {
			missing := !m.Textures[key].Exists
			if prior, ok := edges[edge{modelKey, key}]; !ok || (!prior && missing) {
				edges[edge{modelKey, key}] = missing
			}
		}
	}

	for _, record := range in.Relations {
		modelKey := catalog.NormalizeKey(record.Model)
		if _, ok := m.Models[modelKey]; !ok {
			continue
		}
		for _, ref := range record.Textures {
			explicit(modelKey, ref)
		}
	}

	for modelKey, refs := range in.Materials {
		if _, ok := m.Models[modelKey]; !ok {
			continue
		}
		for _, ref := range refs {
			explicit(modelKey, ref.Texture)
		}
	}

	// Naming-convention fallback: model name matches a texture base.
	for modelKey := range m.Models {
		base := in.Rules.NormalizeRef(modelKey)
		for _, key := range byBase[base] {
			if !m.Textures[key].Exists {
				continue
			}
			if _, ok := edges[edge{modelKey, key}]; !ok {
				edges[edge{modelKey, key}] = false
			}
		}
	}

	for e, missing := range edges {
		m.Usages = append(m.Usages, TextureUsage{Model: e.model, Texture: e.texture, Missing: missing})
		m.UsageByModel[e.model] = append(m.UsageByModel[e.model], e.texture)
		m.UsageByTexture[e.texture] = append(m.UsageByTexture[e.texture], e.model)
	}
}

// markUnused lists on-disk textures with zero incoming usage edges.
func markUnused(m *UnifiedModel) {
	for key, record := range m.Textures {
		if !record.Exists {
			continue
		}
		if len(m.UsageByTexture[key]) == 0 {
			m.Unused = append(m.Unused, key)
			m.addInconsistency(InconsistencyUnusedTexture, record.Name,
				fmt.Sprintf("present in %s tier but referenced by no model", record.Tier))
		}
	}
}

func (m *UnifiedModel) addInconsistency(kind InconsistencyKind, subject, detail string) {
	m.Inconsistencies = append(m.Inconsistencies, Inconsistency{Kind: kind, Subject: subject, Detail: detail})
}

func mergeVersion(versions []int, version int) []int {
	for _, v := range versions {
		if v == version {
			return versions
		}
	}
	versions = append(versions, version)
	sort.Ints(versions)
	return versions
}

// sortModel orders every slice on the model so that identical inputs
// always produce identical output.
func sortModel(m *UnifiedModel) {
	sort.Slice(m.Usages, func(i, j int) bool {
		if m.Usages[i].Model != m.Usages[j].Model {
			return m.Usages[i].Model < m.Usages[j].Model
		}
		return m.Usages[i].Texture < m.Usages[j].Texture
	})
	sort.Strings(m.Unused)
	for _, keys := range m.UsageByModel {
		sort.Strings(keys)
	}
	for _, keys := range m.UsageByTexture {
		sort.Strings(keys)
	}
	sort.Slice(m.Inconsistencies, func(i, j int) bool {
		a, b := m.Inconsistencies[i], m.Inconsistencies[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		return a.Detail < b.Detail
	})
	sort.Slice(m.Relations, func(i, j int) bool {
		return m.Relations[i].Line < m.Relations[j].Line
	})
}
