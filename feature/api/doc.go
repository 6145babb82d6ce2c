// Package api is the HTTP presentation front-end.
//
// It exposes the query layer read-only over Fiber: model listings with
// category/name/CT filters, parent chains, per-model textures, unused and
// PBR texture sets, the inconsistency list, and a reload trigger. It is a
// thin consumer of core/session and core/query, the same contract the CLI
// commands use, and holds no state of its own.
package api
