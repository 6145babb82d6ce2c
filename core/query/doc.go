// Package query provides stateless read-only views over a reconciled
// UnifiedModel.
//
// Every function is a pure read: none mutates the model, all are safe to
// call concurrently against a completed UnifiedModel, and all return an
// empty slice (never an error) when nothing matches. Hierarchy walks use
// the cycle-free parent map, so they always terminate.
package query
