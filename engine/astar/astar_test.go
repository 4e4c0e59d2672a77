package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine/astar"
	"github.com/katalvlaran/hashi/grid"
)

func TestSolveSingleBridge(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := astar.Solve(context.Background(), res)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Bridges, 1)
	assert.Equal(t, 1, result.Bridges[0].Count)
}

func TestSolveDoubleBridge(t *testing.T) {
	g := grid.Grid{{2, 0, 2}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := astar.Solve(context.Background(), res)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Bridges, 1)
	assert.Equal(t, 2, result.Bridges[0].Count)
}

func TestSolveUnsatIsolatedIsland(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := astar.Solve(context.Background(), res)
	require.NoError(t, err)
	assert.False(t, result.Found, "bridges = %+v", result.Bridges)
}

func TestSolveEmptyGridSucceeds(t *testing.T) {
	g := grid.Grid{{0, 0}, {0, 0}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := astar.Solve(context.Background(), res)
	require.NoError(t, err)
	assert.True(t, result.Found, "expected a grid with no islands to succeed with an empty solution")
	assert.Empty(t, result.Bridges)
}

func TestSolveRespectsCancellation(t *testing.T) {
	g := grid.Grid{{2, 0, 2}, {0, 0, 0}, {2, 0, 2}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.Solve(ctx, res)
	assert.Error(t, err, "expected ErrCancelled on an already-cancelled context")
}

func TestSolveWithMaxPopsExceededReportsUnsolvable(t *testing.T) {
	g := grid.Grid{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := astar.Solve(context.Background(), res, astar.WithMaxPops(1))
	require.NoError(t, err)
	assert.False(t, result.Found, "expected the 1-pop bound to exhaust before reaching a goal state")
}
