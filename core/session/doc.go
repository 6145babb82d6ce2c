// Package session owns the single active UnifiedModel.
//
// A Session holds the current snapshot behind an atomic pointer. Reload
// runs the synchronous pipeline (parse catalog, parse report, and scan
// inventory concurrently via errgroup, then reconcile) and swaps the
// snapshot in atomically only on success. A failed reload keeps the
// previous valid snapshot active and returns the error.
//
// Concurrent Reload calls coalesce through singleflight: there is at most
// one in-flight build, and simultaneous callers share its result, so two
// builds can never race on filesystem state. Readers call Current and get
// an immutable snapshot; they never block each other.
package session
