package encode

import (
	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/hashigraph"
)

// Builder accumulates a CNF model across the encoding phases. It is the
// in-tree analogue of a free function threading clauses/incidence/counter
// through closures: every phase method mutates the same formula in place.
type Builder struct {
	opts options

	islands  []grid.Island
	edges    []hashigraph.Edge
	edgeVars map[hashigraph.EdgeKey]EdgeVars
	formula  *cnf.Formula
}

// NewBuilder returns a Builder seeded with the islands and candidate edges
// of g, ready for Phase1 through Phase4.
func NewBuilder(g grid.Grid, opts ...Option) *Builder {
	islands := grid.Islands(g)
	edges := hashigraph.Discover(g, islands)
	return newBuilderFrom(islands, edges, opts...)
}

func newBuilderFrom(islands []grid.Island, edges []hashigraph.Edge, opts ...Option) *Builder {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &Builder{
		opts:     o,
		islands:  islands,
		edges:    edges,
		edgeVars: make(map[hashigraph.EdgeKey]EdgeVars, len(edges)),
		formula:  cnf.NewFormula(),
	}
}

// Build runs all four phases and returns the assembled Result.
func Build(g grid.Grid, opts ...Option) (*Result, error) {
	b := NewBuilder(g, opts...)
	b.Phase1EdgeVariables()
	b.Phase2DegreeConstraints()
	b.Phase3NonCrossing()
	b.Phase4Connectivity()
	return b.Result(), nil
}

// Rebuild re-runs all four encoding phases over an already-discovered set
// of islands and candidate edges, skipping grid re-parsing and edge
// rediscovery. It exists for callers like satdriven.WithEncodingFallback
// that need to re-encode the same puzzle with a different PB encoder: the
// islands and edges are immutable between attempts, only the encoder
// option and the resulting variable numbering change.
func Rebuild(islands []grid.Island, edges []hashigraph.Edge, opts ...Option) (*Result, error) {
	b := newBuilderFrom(islands, edges, opts...)
	b.Phase1EdgeVariables()
	b.Phase2DegreeConstraints()
	b.Phase3NonCrossing()
	b.Phase4Connectivity()
	return b.Result(), nil
}

// Result freezes the Builder's accumulated state into an immutable Result.
func (b *Builder) Result() *Result {
	return &Result{
		Formula:  b.formula,
		EdgeVars: b.edgeVars,
		Islands:  b.islands,
		Edges:    b.edges,
	}
}

// Phase1EdgeVariables assigns (VX, VD) to every candidate edge and asserts
// ¬(VX ∧ VD).
func (b *Builder) Phase1EdgeVariables() {
	for _, e := range b.edges {
		vx := cnf.Lit(b.formula.FreshVar())
		vd := cnf.Lit(b.formula.FreshVar())
		b.edgeVars[e.Key] = EdgeVars{VX: vx, VD: vd}
		b.formula.Add(cnf.Clause{-vx, -vd})
	}
}

// Phase3NonCrossing forbids simultaneous use of any bridge variable on
// either side of every crossing edge pair.
func (b *Builder) Phase3NonCrossing() {
	for i := 0; i < len(b.edges); i++ {
		for j := i + 1; j < len(b.edges); j++ {
			if !hashigraph.Cross(b.edges[i], b.edges[j]) {
				continue
			}
			v1 := b.edgeVars[b.edges[i].Key]
			v2 := b.edgeVars[b.edges[j].Key]
			for _, a := range [2]cnf.Lit{v1.VX, v1.VD} {
				for _, c := range [2]cnf.Lit{v2.VX, v2.VD} {
					b.formula.Add(cnf.Clause{-a, -c})
				}
			}
		}
	}
}
