package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/grid"
)

func TestParseReaderHappyPath(t *testing.T) {
	src := "0,2,0\n2, 0 ,2\n0,2,0\n"
	g, err := grid.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	assert.Equal(t, 0, g[1][1])
}

func TestParseReaderRejectsRaggedInput(t *testing.T) {
	src := "1,1\n1\n"
	_, err := grid.ParseReader(strings.NewReader(src))
	assert.Error(t, err)
}

func TestParseReaderRejectsEmptyInput(t *testing.T) {
	_, err := grid.ParseReader(strings.NewReader(""))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestIslandsRowMajorIndexing(t *testing.T) {
	g := grid.Grid{
		{0, 2, 0},
		{2, 0, 2},
		{0, 2, 0},
	}
	islands := grid.Islands(g)
	require.Len(t, islands, 4)
	want := []grid.Island{
		{Index: 0, Row: 0, Col: 1, Degree: 2},
		{Index: 1, Row: 1, Col: 0, Degree: 2},
		{Index: 2, Row: 1, Col: 2, Degree: 2},
		{Index: 3, Row: 2, Col: 1, Degree: 2},
	}
	assert.Equal(t, want, islands)
}

func TestIndexLookup(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	islands := grid.Islands(g)
	idx := grid.Index(islands)
	assert.Equal(t, 0, idx[grid.Coord{Row: 0, Col: 0}])
	assert.Equal(t, 1, idx[grid.Coord{Row: 0, Col: 2}])
}

func TestEmptyGridYieldsNoIslands(t *testing.T) {
	g := grid.Grid{{0, 0}, {0, 0}}
	assert.Empty(t, grid.Islands(g))
}
