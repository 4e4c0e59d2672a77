package encode

import (
	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/hashigraph"
)

// EdgeVars holds the two propositional variables an edge owns: VX ("edge
// carries a single bridge", weight 1) and VD ("edge carries 2 bridges",
// weight 2). The invariant ¬(VX ∧ VD) is enforced as a clause during Phase
// 1, so a double bridge is VD alone, never VX together with VD.
type EdgeVars struct {
	VX cnf.Lit
	VD cnf.Lit
}

// Result is the output of Build: the complete CNF formula, the edge
// variable map keyed by canonical edge, the islands the puzzle was built
// from, and the candidate edges themselves (needed by solution.Validate for
// the decoded islands graph).
type Result struct {
	Formula  *cnf.Formula
	EdgeVars map[hashigraph.EdgeKey]EdgeVars
	Islands  []grid.Island
	Edges    []hashigraph.Edge
}

// Incidence returns, for each island index, the list of (neighbor index,
// VX, VD) tuples for its incident edges. Built once from EdgeVars; the
// caller should treat the result as read-only.
func (r *Result) Incidence() map[int][]IncidentEdge {
	inc := make(map[int][]IncidentEdge, len(r.Islands))
	for _, e := range r.Edges {
		vars := r.EdgeVars[e.Key]
		inc[e.Key.Lo] = append(inc[e.Key.Lo], IncidentEdge{Neighbor: e.Key.Hi, VX: vars.VX, VD: vars.VD})
		inc[e.Key.Hi] = append(inc[e.Key.Hi], IncidentEdge{Neighbor: e.Key.Lo, VX: vars.VX, VD: vars.VD})
	}
	return inc
}

// IncidentEdge is one entry of an island's incidence list.
type IncidentEdge struct {
	Neighbor int
	VX, VD   cnf.Lit
}
