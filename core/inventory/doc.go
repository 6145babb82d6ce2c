// Package inventory scans the on-disk texture directories and produces a
// catalog of texture files with naming-derived metadata.
//
// Two directories are scanned: the standard tier (KoreaObj) and the
// high-resolution tier (KoreaObj_HiRes). Classification is driven by a
// RuleSet, a configurable table mapping file-name suffixes to material
// channels, because the BMS naming conventions change across versions and
// must not be hard-coded. A file whose suffix maps to a PBR channel
// (normal, ARMW, albedo, ...) is PBR-class; everything else is legacy.
//
// A missing directory is a source.UnavailableError naming the path; an
// empty directory is valid and yields zero records.
package inventory
