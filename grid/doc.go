// Package grid parses the rectangular integer grids Hashiwokakero puzzles
// are posed on and enumerates the islands within them.
//
// A grid is a rectangular matrix of non-negative integers; a non-zero cell
// is an island whose value is its required bridge degree. Islands are
// numbered in row-major scan order and that index is stable for the rest of
// the solve — every other package addresses an island by this index rather
// than by its coordinates.
//
// The text format parsed here (comma-separated decimal cells, one row per
// line, optional whitespace) is the module's one piece of required I/O;
// everything downstream of Islands is pure.
package grid
