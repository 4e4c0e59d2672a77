package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/hashigraph"
	"github.com/katalvlaran/hashi/solution"
)

func TestExtractDecodesMultiplicity(t *testing.T) {
	key := hashigraph.NewEdgeKey(0, 1)
	edgeVars := map[hashigraph.EdgeKey]encode.EdgeVars{
		key: {VX: 1, VD: 2},
	}

	// Model where vx=true, vd=false -> count 1.
	model := cnf.Model{1, -2}
	bridges := solution.Extract(model, edgeVars)
	require.Len(t, bridges, 1)
	assert.Equal(t, 1, bridges[0].Count)

	// Model where vx=false, vd=true -> count 2.
	model = cnf.Model{-1, 2}
	bridges = solution.Extract(model, edgeVars)
	require.Len(t, bridges, 1)
	assert.Equal(t, 2, bridges[0].Count)

	// Model where neither is set -> no bridge.
	model = cnf.Model{-1, -2}
	bridges = solution.Extract(model, edgeVars)
	assert.Empty(t, bridges)
}

func TestValidateAcceptsConnectedMatchingDegrees(t *testing.T) {
	islands := []grid.Island{
		{Index: 0, Degree: 1},
		{Index: 1, Degree: 1},
	}
	bridges := []solution.Bridge{{I: 0, J: 1, Count: 1}}
	assert.NoError(t, solution.Validate(islands, bridges))
}

func TestValidateAcceptsEmptyGrid(t *testing.T) {
	assert.NoError(t, solution.Validate(nil, nil), "a grid with no islands must validate trivially")
}

func TestValidateRejectsDegreeMismatch(t *testing.T) {
	islands := []grid.Island{
		{Index: 0, Degree: 2},
		{Index: 1, Degree: 2},
	}
	bridges := []solution.Bridge{{I: 0, J: 1, Count: 1}}
	assert.ErrorIs(t, solution.Validate(islands, bridges), solution.ErrDegreeMismatch)
}

func TestValidateRejectsDisconnectedComponents(t *testing.T) {
	islands := []grid.Island{
		{Index: 0, Degree: 1},
		{Index: 1, Degree: 1},
		{Index: 2, Degree: 1},
		{Index: 3, Degree: 1},
	}
	bridges := []solution.Bridge{
		{I: 0, J: 1, Count: 1},
		{I: 2, J: 3, Count: 1},
	}
	assert.ErrorIs(t, solution.Validate(islands, bridges), solution.ErrDisconnected)
}

func TestBlockingClauseNegatesEveryLiteral(t *testing.T) {
	model := cnf.Model{1, -2, 3}
	clause := solution.BlockingClause(model)
	want := cnf.Clause{-1, 2, -3}
	assert.Equal(t, want, clause)
}
