package grid

// Islands scans g in row-major order and returns one Island per non-zero
// cell, indexed by scan order. The returned slice is stable across calls on
// the same grid and is the numbering every other package keys off of.
func Islands(g Grid) []Island {
	var islands []Island
	for r, row := range g {
		for c, v := range row {
			if v != 0 {
				islands = append(islands, Island{
					Index:  len(islands),
					Row:    r,
					Col:    c,
					Degree: v,
				})
			}
		}
	}
	return islands
}

// Index builds a lookup from (row, col) to island index for the given
// islands slice, keyed the same way Islands numbers them.
func Index(islands []Island) map[Coord]int {
	idx := make(map[Coord]int, len(islands))
	for _, isl := range islands {
		idx[Coord{Row: isl.Row, Col: isl.Col}] = isl.Index
	}
	return idx
}
