// Package render turns a validated element dataset into an SVG periodic table.
//
// Each element becomes a group holding a gradient definition, a box and three
// labels (atomic number, symbol, atomic mass). Boxes are placed on a grid by
// period (row) and group (column):
//
//	x = group*boxWidth + (group-1)*gap + padding
//	y = period*boxHeight + (period-1)*gap + padding
//
// The canvas covers the largest period and group present plus padding on
// each side.
//
// Generate is a pure function of its inputs. Unknown theme, layout or
// typography names are reported as dataset validation errors.
//
// DataURI and WritePNG convert a generated document for export.
package render
