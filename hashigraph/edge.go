package hashigraph

import "github.com/katalvlaran/hashi/grid"

// EdgeKey canonicalizes an unordered pair of island indices as (Lo, Hi)
// with Lo <= Hi. At most one Edge exists per EdgeKey.
type EdgeKey struct {
	Lo, Hi int
}

// NewEdgeKey canonicalizes island indices i and j into an EdgeKey.
func NewEdgeKey(i, j int) EdgeKey {
	if i < j {
		return EdgeKey{Lo: i, Hi: j}
	}
	return EdgeKey{Lo: j, Hi: i}
}

// Edge is a candidate bridge location between two islands aligned
// orthogonally with no island between them. A and B are the endpoint
// coordinates, in the order the ray walk first discovered them.
type Edge struct {
	Key EdgeKey
	A   grid.Coord
	B   grid.Coord
}

// Orientation reports whether the edge runs horizontally or vertically.
type Orientation int

const (
	// Horizontal edges share a row.
	Horizontal Orientation = iota
	// Vertical edges share a column.
	Vertical
)

// Orientation returns the edge's axis. Candidate edges are always axis
// aligned by construction, so this never needs a third "other" case.
func (e Edge) Orientation() Orientation {
	if e.A.Row == e.B.Row {
		return Horizontal
	}
	return Vertical
}

// neighborOffsets are the four orthogonal ray directions a candidate edge
// may be discovered along: N, E, S, W. Order only affects which endpoint
// order an Edge records, not which edges are found.
var neighborOffsets = [4]grid.Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Discover walks the four orthogonal directions from every island in
// islands until the grid border is reached or a non-zero cell is
// encountered. If that cell is another island, the canonical pair is
// recorded with its endpoint coordinates, keeping the first occurrence.
// Cells in between must be empty; bridges never cross islands.
//
// Complexity: O(islands * max(rows, cols)).
func Discover(g grid.Grid, islands []grid.Island) []Edge {
	idx := grid.Index(islands)
	seen := make(map[EdgeKey]struct{})
	var edges []Edge

	for _, isl := range islands {
		for _, d := range neighborOffsets {
			r, c := isl.Row+d.Row, isl.Col+d.Col
			for g.InBounds(r, c) {
				if g[r][c] != 0 {
					otherIdx, ok := idx[grid.Coord{Row: r, Col: c}]
					if ok && otherIdx != isl.Index {
						key := NewEdgeKey(isl.Index, otherIdx)
						if _, dup := seen[key]; !dup {
							seen[key] = struct{}{}
							edges = append(edges, Edge{
								Key: key,
								A:   grid.Coord{Row: isl.Row, Col: isl.Col},
								B:   grid.Coord{Row: r, Col: c},
							})
						}
					}
					break
				}
				r += d.Row
				c += d.Col
			}
		}
	}
	return edges
}
