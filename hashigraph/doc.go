// Package hashigraph derives the candidate bridge edges between islands of
// a grid.Grid and tests pairs of edges for an orthogonal crossing.
//
// Adapted from lvlath/gridgraph's neighbor-offset ray walk: where gridgraph
// floods outward through same-valued land cells to find connected
// components, hashigraph instead walks each of the four orthogonal
// directions from an island until it meets the grid border (no edge) or
// another island (a candidate edge), treating any other non-zero cell along
// the way as a wall that blocks the ray. Edges never cross the interior of
// another island.
package hashigraph
