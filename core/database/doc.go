// Package database opens the local SQLite database used for load history.
//
// The database is a tool-local artifact, never a BMS data file: the
// analyzer is strictly read-only with respect to BMS sources. History is
// an optional feature; a failed connection only disables it.
package database
