package query

import (
	"sort"
	"strings"

	"bms-asset-manager/core/catalog"
	"bms-asset-manager/core/inventory"
	"bms-asset-manager/core/reconcile"
)

// ByCategory returns all model entries in the given category, sorted by
// key. Category matching is case-insensitive.
func ByCategory(m *reconcile.UnifiedModel, category string) []reconcile.ModelEntry {
	var entries []reconcile.ModelEntry
	for _, entry := range m.Models {
		if strings.EqualFold(entry.Category, category) {
			entries = append(entries, entry)
		}
	}
	return sortEntries(entries)
}

// ByNameSubstring returns all model entries whose name contains the given
// substring, case-insensitively, sorted by key.
func ByNameSubstring(m *reconcile.UnifiedModel, substring string) []reconcile.ModelEntry {
	needle := strings.ToLower(substring)
	var entries []reconcile.ModelEntry
	for _, entry := range m.Models {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			entries = append(entries, entry)
		}
	}
	return sortEntries(entries)
}

// ByCTNumber returns the model entries with the given CT number, sorted by
// key. CT numbers are unique in a clean catalog, but duplicates are data
// the caller should be able to see.
func ByCTNumber(m *reconcile.UnifiedModel, ct int) []reconcile.ModelEntry {
	if ct == 0 {
		return nil
	}
	var entries []reconcile.ModelEntry
	for _, entry := range m.Models {
		if entry.CTNumber == ct {
			entries = append(entries, entry)
		}
	}
	return sortEntries(entries)
}

// ParentChain returns the ancestry of the named model, ordered root first
// with the model itself last. It walks the cycle-free parent map, so it
// terminates on any input. Unknown names yield an empty chain.
func ParentChain(m *reconcile.UnifiedModel, name string) []reconcile.ModelEntry {
	key := catalog.NormalizeKey(name)
	if _, ok := m.Models[key]; !ok {
		return nil
	}

	var chain []reconcile.ModelEntry
	seen := make(map[string]bool)
	for key != "" && !seen[key] {
		seen[key] = true
		entry, ok := m.Models[key]
		if !ok {
			break
		}
		chain = append(chain, entry)
		key = m.Parents[key]
	}

	// Walked leaf-to-root; the contract is root first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// TexturesForModel returns every texture record the named model uses,
// including missing (phantom) records, sorted by record key.
func TexturesForModel(m *reconcile.UnifiedModel, name string) []inventory.Record {
	key := catalog.NormalizeKey(name)
	keys := m.UsageByModel[key]
	records := make([]inventory.Record, 0, len(keys))
	for _, textureKey := range keys {
		if record, ok := m.Textures[textureKey]; ok {
			records = append(records, record)
		}
	}
	return records
}

// UnusedTextures returns the texture records present on disk but
// referenced by no model, sorted by record key.
func UnusedTextures(m *reconcile.UnifiedModel) []inventory.Record {
	records := make([]inventory.Record, 0, len(m.Unused))
	for _, key := range m.Unused {
		if record, ok := m.Textures[key]; ok {
			records = append(records, record)
		}
	}
	return records
}

// PBRTextures returns every on-disk texture record classified as part of a
// PBR channel set, sorted by record key.
func PBRTextures(m *reconcile.UnifiedModel) []inventory.Record {
	var records []inventory.Record
	for _, record := range m.Textures {
		if record.PBR && record.Exists {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Key() < records[j].Key()
	})
	return records
}

// Inconsistencies returns a copy of the model's inconsistency list.
func Inconsistencies(m *reconcile.UnifiedModel) []reconcile.Inconsistency {
	return append([]reconcile.Inconsistency(nil), m.Inconsistencies...)
}

func sortEntries(entries []reconcile.ModelEntry) []reconcile.ModelEntry {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
