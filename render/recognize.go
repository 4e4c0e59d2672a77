package render

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/solution"
)

// ErrMalformedOutput indicates rendered text mixed bridge symbols between a
// single pair of islands, or used a token outside the module's alphabet.
var ErrMalformedOutput = errors.New("render: malformed rendered output")

// Recognize parses rendered output (as produced by Render) back into the
// underlying grid and its decoded bridges. It exists to support the
// round-trip law: render(extract(model)) must recover the same island
// positions/degrees and bridge multiplicities that produced it.
func Recognize(s string) (grid.Grid, []solution.Bridge, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	tokens := make([][]string, len(lines))
	for r, line := range lines {
		tokens[r] = strings.Fields(line)
	}

	g := make(grid.Grid, len(tokens))
	for r, row := range tokens {
		g[r] = make([]int, len(row))
		for c, tok := range row {
			if tok >= "1" && tok <= "8" {
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, nil, ErrMalformedOutput
				}
				g[r][c] = v
			}
		}
	}

	islands := grid.Islands(g)
	idx := grid.Index(islands)

	var bridges []solution.Bridge

	// Horizontal runs, row by row.
	for r, row := range tokens {
		lastCol, lastSet := -1, false
		for c, tok := range row {
			if tok < "1" || tok > "8" {
				continue
			}
			if lastSet {
				b, err := bridgeBetween(row[lastCol+1:c], "-", "=")
				if err != nil {
					return nil, nil, err
				}
				if b > 0 {
					bridges = append(bridges, solution.Bridge{
						I:     idx[grid.Coord{Row: r, Col: lastCol}],
						J:     idx[grid.Coord{Row: r, Col: c}],
						Count: b,
					})
				}
			}
			lastCol, lastSet = c, true
		}
	}

	// Vertical runs, column by column.
	cols := 0
	if len(tokens) > 0 {
		cols = len(tokens[0])
	}
	for c := 0; c < cols; c++ {
		lastRow, lastSet := -1, false
		for r := 0; r < len(tokens); r++ {
			tok := tokens[r][c]
			if tok < "1" || tok > "8" {
				continue
			}
			if lastSet {
				between := make([]string, 0, r-lastRow-1)
				for k := lastRow + 1; k < r; k++ {
					between = append(between, tokens[k][c])
				}
				b, err := bridgeBetween(between, "|", "$")
				if err != nil {
					return nil, nil, err
				}
				if b > 0 {
					bridges = append(bridges, solution.Bridge{
						I:     idx[grid.Coord{Row: lastRow, Col: c}],
						J:     idx[grid.Coord{Row: r, Col: c}],
						Count: b,
					})
				}
			}
			lastRow, lastSet = r, true
		}
	}

	return g, bridges, nil
}

// bridgeBetween inspects the tokens strictly between two islands and
// returns the uniform bridge count they encode: 0 when every token is "0",
// 1 when every token is single, 2 when every token is double. Any other
// mix (including a mix of "0" with a bridge symbol) is malformed.
func bridgeBetween(between []string, single, double string) (int, error) {
	if len(between) == 0 {
		return 0, nil
	}
	want := between[0]
	for _, tok := range between {
		if tok != want {
			return 0, ErrMalformedOutput
		}
	}
	switch want {
	case "0":
		return 0, nil
	case single:
		return 1, nil
	case double:
		return 2, nil
	default:
		return 0, ErrMalformedOutput
	}
}
