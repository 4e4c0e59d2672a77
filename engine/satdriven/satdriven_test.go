package satdriven_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine"
	"github.com/katalvlaran/hashi/engine/satdriven"
	"github.com/katalvlaran/hashi/grid"
)

func TestSolveSingleBridge(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Bridges, 1)
	assert.Equal(t, 1, result.Bridges[0].Count)
}

func TestSolveDoubleBridge(t *testing.T) {
	g := grid.Grid{{2, 0, 2}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Bridges, 1)
	assert.Equal(t, 2, result.Bridges[0].Count)
}

func TestSolveRingOfFour(t *testing.T) {
	g := grid.Grid{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Len(t, result.Bridges, 4, "bridges forming the ring")
}

func TestSolveUnsatIsolatedIsland(t *testing.T) {
	g := grid.Grid{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res)
	require.NoError(t, err)
	assert.False(t, result.Found, "bridges = %+v", result.Bridges)
}

// erroringSolver always fails with a non-cancellation error, simulating an
// external CDCL binding crashing or refusing the input.
type erroringSolver struct {
	err error
}

func (s *erroringSolver) Bootstrap(clauses []cnf.Clause) {}
func (s *erroringSolver) Solve(ctx context.Context) (bool, error) {
	return false, s.err
}
func (s *erroringSolver) Model() cnf.Model       { return nil }
func (s *erroringSolver) AddClause(c cnf.Clause) {}

func TestSolveSwallowsSolverErrorAndReportsUnsolvable(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	solver := &erroringSolver{err: errors.New("external solver crashed")}
	result, err := satdriven.Solve(context.Background(), res, satdriven.WithSolver(solver))
	require.NoError(t, err, "want the solver error swallowed")
	assert.False(t, result.Found, "bridges = %+v", result.Bridges)
}

func TestSolveSwallowsSolverErrorThenFallsBack(t *testing.T) {
	g := grid.Grid{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	solver := &erroringSolver{err: errors.New("external solver crashed")}
	result, err := satdriven.Solve(context.Background(), res, satdriven.WithSolver(solver), satdriven.WithEncodingFallback())
	require.NoError(t, err, "want the solver error swallowed")
	assert.False(t, result.Found, "expected no solution: the fallback reuses the same (always-erroring) solver")
}

func TestSolveStillPropagatesCancellationThroughCustomSolver(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	solver := &erroringSolver{err: engine.ErrCancelled}
	_, err = satdriven.Solve(context.Background(), res, satdriven.WithSolver(solver))
	assert.ErrorIs(t, err, engine.ErrCancelled, "want ErrCancelled propagated, not swallowed")
}

func TestSolveEmptyGridSucceeds(t *testing.T) {
	g := grid.Grid{{0, 0}, {0, 0}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res)
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
	_, err = satdriven.Solve(ctx, res)
	assert.Error(t, err, "expected ErrCancelled on an already-cancelled context")
}

func TestSolveWithCustomMaxBlockingClauses(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res, satdriven.WithMaxBlockingClauses(1))
	require.NoError(t, err)
	assert.True(t, result.Found, "expected the single-bridge puzzle to be solved within one blocking-clause round")
}

func TestSolveWithEncodingFallback(t *testing.T) {
	g := grid.Grid{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	res, err := encode.Build(g)
	require.NoError(t, err)
	result, err := satdriven.Solve(context.Background(), res, satdriven.WithEncodingFallback())
	require.NoError(t, err)
	require.True(t, result.Found, "expected the ring-of-four puzzle to be solved, with or without falling back")
	assert.Len(t, result.Bridges, 4, "bridges forming the ring")
}
