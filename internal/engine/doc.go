// Package engine holds the army composition rules: unit costs, army totals,
// wargear and enhancement selection, list validation and text export.
//
// Everything here is synchronous and free of I/O. Callers resolve catalogue
// data through catalogue.Catalogue and persist results themselves.
package engine
