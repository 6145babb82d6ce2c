// Package source defines the shared error and diagnostic types for the
// raw data sources (XML catalog, relationship report, texture directories).
//
// The error taxonomy is:
//   - UnavailableError: a required file or directory is missing or unreadable.
//     This is fatal for the load attempt that hit it.
//   - Warning: a single malformed record was skipped. Parsing continues and
//     the warning is surfaced to the caller for diagnostics.
//
// Data-level problems (dangling references, missing textures, cycles) are not
// errors at all; they are recorded as reconcile.Inconsistency values.
package source
