// Package catalog parses the Falcon BMS asset-definition sources into raw
// typed records.
//
// It handles four independently-authored inputs:
//
//  1. The XML catalog (Falcon4_CT.xml) listing class-table entries with CT
//     number, entity type, and graphics slots. Display names are resolved
//     through the FCD/VCD/WCD class-name tables found next to the catalog.
//  2. The line-oriented relationship report, a sequence of "Key: value"
//     blocks describing each model's parent, BML version, and textures.
//  3. Optional materials.mtl files (JSON) carrying per-material PBR texture
//     slots for BML version 2 models.
//  4. Optional cockpit definitions (Acdata *.txtpb plus CkptArt 3dCkpit.dat)
//     contributing cockpit model records with no CT number.
//
// All parsers are tolerant: a malformed row is skipped and reported as a
// source.Warning, never a fatal error. Only a missing or unreadable input
// file fails the parse, with a source.UnavailableError naming the path.
package catalog
