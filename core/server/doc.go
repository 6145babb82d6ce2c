// Package server holds the HTTP front-end configuration.
//
// The front-end itself is assembled in the start command: a Fiber app with
// the ray-id and logging middleware, serving the feature routes. The core
// data model never depends on this package; any alternative presentation
// (CLI, GUI) consumes the same session and query layer.
package server
