package solution

import (
	"errors"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/dsu"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/hashigraph"
)

// Sentinel errors for solution validation.
var (
	// ErrDisconnected indicates the decoded bridge graph does not span all
	// islands in a single component.
	ErrDisconnected = errors.New("solution: island graph is disconnected")
	// ErrDegreeMismatch indicates some island's incident bridge count does
	// not equal its declared degree.
	ErrDegreeMismatch = errors.New("solution: bridge count does not match island degree")
)

// Bridge is a decoded edge with its bridge multiplicity, 1 or 2.
type Bridge struct {
	I, J  int
	Count int
}

// Extract decodes a model into the list of edges that carry at least one
// bridge, per edge: (vx ∈ model ∨ vd ∈ model) + (vd ∈ model).
func Extract(model cnf.Model, edgeVars map[hashigraph.EdgeKey]encode.EdgeVars) []Bridge {
	var bridges []Bridge
	for key, ev := range edgeVars {
		useX := model.True(ev.VX.Var())
		useD := model.True(ev.VD.Var())
		count := 0
		if useX || useD {
			count++
		}
		if useD {
			count++
		}
		if count > 0 {
			bridges = append(bridges, Bridge{I: key.Lo, J: key.Hi, Count: count})
		}
	}
	return bridges
}

// Validate checks that bridges form a single connected component over
// islands and that each island's incident bridge count equals its declared
// degree. It rejects the model (returning an error) rather than panicking
// on any failure; the caller's search loop is expected to add a blocking
// clause and retry.
func Validate(islands []grid.Island, bridges []Bridge) error {
	if len(islands) == 0 {
		return nil
	}

	degreeSum := make(map[int]int, len(islands))
	d := dsu.New(len(islands))
	for _, b := range bridges {
		degreeSum[b.I] += b.Count
		degreeSum[b.J] += b.Count
		d.Union(b.I, b.J)
	}

	for _, isl := range islands {
		if degreeSum[isl.Index] != isl.Degree {
			return ErrDegreeMismatch
		}
	}

	root := d.Root(islands[0].Index)
	for _, isl := range islands[1:] {
		if d.Root(isl.Index) != root {
			return ErrDisconnected
		}
	}
	return nil
}

// BlockingClause returns the negation of every literal in model: {¬ℓ : ℓ ∈
// model}. Adding this clause to a formula forbids the solver from returning
// the same model again.
func BlockingClause(model cnf.Model) cnf.Clause {
	clause := make(cnf.Clause, len(model))
	for i, lit := range model {
		clause[i] = lit.Negate()
	}
	return clause
}
