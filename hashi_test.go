package hashi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/metrics"
)

func TestSolveSingleBridgeEachAlgo(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	for _, algo := range []hashi.Algo{hashi.AlgoSAT, hashi.AlgoBacktrack, hashi.AlgoAStar, hashi.AlgoBrute} {
		out, err := hashi.Solve(context.Background(), g, algo)
		require.NoError(t, err, "%s", algo)
		assert.Contains(t, out, "-", "%s: want a single horizontal bridge", algo)
	}
}

func TestSolveUnknownAlgo(t *testing.T) {
	g := grid.Grid{{1, 0, 1}}
	_, err := hashi.Solve(context.Background(), g, hashi.Algo("nonsense"))
	assert.ErrorIs(t, err, hashi.ErrUnknownAlgo)
}

func TestSolveUnsatReturnsEmptyString(t *testing.T) {
	g := grid.Grid{{1}}
	out, err := hashi.Solve(context.Background(), g, hashi.AlgoSAT)
	require.NoError(t, err)
	assert.Empty(t, out, "want empty string for an unsatisfiable puzzle")
}

func TestSolveWithRecorderObservesRun(t *testing.T) {
	g := grid.Grid{
		{2, 0, 2},
		{0, 0, 0},
		{2, 0, 2},
	}
	rec := metrics.New()
	out, err := hashi.Solve(context.Background(), g, hashi.AlgoBacktrack, hashi.WithRecorder(rec))
	require.NoError(t, err)
	require.NotEmpty(t, out, "expected a solution")
	assert.NotZero(t, rec.Snapshot().Decisions, "expected at least one recorded decision")
}

func TestSolveWithEncodingFallbackStillSolves(t *testing.T) {
	g := grid.Grid{{2, 0, 2}}
	out, err := hashi.Solve(context.Background(), g, hashi.AlgoSAT, hashi.WithEncodingFallback())
	require.NoError(t, err)
	assert.Contains(t, out, "=", "want a double horizontal bridge")
}
