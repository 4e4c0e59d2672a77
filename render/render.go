package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/solution"
)

// Render renders g overlaid with bridges into the module's output format.
// islands must be the same slice (by Index) that bridges' I/J refer to.
func Render(g grid.Grid, islands []grid.Island, bridges []solution.Bridge) string {
	out := make([][]string, len(g))
	for r, row := range g {
		out[r] = make([]string, len(row))
		for c, v := range row {
			if v == 0 {
				out[r][c] = "0"
			} else {
				out[r][c] = strconv.Itoa(v)
			}
		}
	}

	byIndex := make(map[int]grid.Island, len(islands))
	for _, isl := range islands {
		byIndex[isl.Index] = isl
	}

	for _, b := range bridges {
		a := byIndex[b.I]
		z := byIndex[b.J]
		if a.Row == z.Row {
			lo, hi := a.Col, z.Col
			if lo > hi {
				lo, hi = hi, lo
			}
			symbol := "-"
			if b.Count == 2 {
				symbol = "="
			}
			for col := lo + 1; col < hi; col++ {
				out[a.Row][col] = symbol
			}
		} else {
			lo, hi := a.Row, z.Row
			if lo > hi {
				lo, hi = hi, lo
			}
			symbol := "|"
			if b.Count == 2 {
				symbol = "$"
			}
			for row := lo + 1; row < hi; row++ {
				out[row][a.Col] = symbol
			}
		}
	}

	lines := make([]string, len(out))
	for r, row := range out {
		lines[r] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
