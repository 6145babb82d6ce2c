// Package reconcile joins the three independently-authored BMS sources
// (XML catalog, relationship report, texture inventory) into a single
// consistent in-memory model.
//
// The engine indexes models and textures by case-normalized name key,
// resolves parent/child chains, matches texture references against the
// inventory, and computes the derived sets: usage edges, unused textures,
// and the inconsistency list.
//
// # Result guarantee
//
// Reconcile never fails outright on bad input. Dangling parent references,
// missing texture files, duplicate catalog entries, and cyclic parent
// chains are all recorded as Inconsistency values on the returned
// UnifiedModel; the partial data still renders. Only the upstream parse
// and scan steps can fail a load, with source.UnavailableError.
//
// # Determinism
//
// The same three inputs always yield the same UnifiedModel content: every
// slice on the result is sorted, and cycle breaking picks its edge
// deterministically.
package reconcile
