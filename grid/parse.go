package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseReader reads a grid from r in the module's input format: UTF-8 text,
// one row per line, cells separated by ',' with optional surrounding
// whitespace, cells are decimal non-negative integers, 0 denotes empty.
// Every row must parse to the same number of cells.
func ParseReader(r io.Reader) (Grid, error) {
	var g Grid
	scanner := bufio.NewScanner(r)
	width := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("grid: line %d: %w", lineNo, err)
			}
			row[i] = v
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("grid: line %d: %w", lineNo, ErrRaggedGrid)
		}
		g = append(g, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	if len(g) == 0 {
		return nil, ErrEmptyGrid
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ParseFile opens path and parses it as a grid via ParseReader.
func ParseFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()

	g, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", path, err)
	}
	return g, nil
}
