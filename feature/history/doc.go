// Package history persists a summary of every completed load cycle to the
// local SQLite database, so inconsistency trends can be inspected across
// reloads.
//
// The store writes one load_history row per snapshot plus one
// load_inconsistencies row per detected problem. These are tool-local
// artifacts: nothing is ever written back to BMS files.
package history
