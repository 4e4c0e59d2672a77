package encode

import (
	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/grid"
)

// incEntry is one island's view of an incident edge: the neighbor's index
// and the edge's two bridge variables.
type incEntry struct {
	neighbor int
	vx, vd   cnf.Lit
}

// Phase2DegreeConstraints asserts, for every island, that its incident edge
// variables sum (weighted 1 for VX, 2 for VD) to its declared degree. Before
// delegating to the configured pbenc.Encoder, it adds the special-case
// pruning clauses from the module's degree-constraint table: these are
// entailed by the general PB encoding and exist only to shorten the search,
// never to replace the PB assertion below.
func (b *Builder) Phase2DegreeConstraints() {
	degreeOf := make(map[int]int, len(b.islands))
	for _, isl := range b.islands {
		degreeOf[isl.Index] = isl.Degree
	}

	incidence := make(map[int][]incEntry, len(b.islands))
	for _, e := range b.edges {
		ev := b.edgeVars[e.Key]
		incidence[e.Key.Lo] = append(incidence[e.Key.Lo], incEntry{neighbor: e.Key.Hi, vx: ev.VX, vd: ev.VD})
		incidence[e.Key.Hi] = append(incidence[e.Key.Hi], incEntry{neighbor: e.Key.Lo, vx: ev.VX, vd: ev.VD})
	}

	for _, isl := range b.islands {
		entries := incidence[isl.Index]
		if len(entries) == 0 {
			if isl.Degree > 0 {
				// No incident edges can ever satisfy a positive degree.
				b.formula.Add(cnf.Clause{})
			}
			continue
		}

		b.addPruningClauses(isl, entries, degreeOf)

		lits := make([]cnf.Lit, 0, len(entries)*2)
		weights := make([]int, 0, len(entries)*2)
		for _, en := range entries {
			lits = append(lits, en.vx, en.vd)
			weights = append(weights, 1, 2)
		}
		clauses, next := b.opts.pbEncoder.EncodeEquals(lits, weights, isl.Degree, b.formula.NextVar)
		b.formula.NextVar = next
		for _, c := range clauses {
			b.formula.Add(c)
		}
	}
}

// addPruningClauses implements the degree-constraint special cases: single
// neighbor islands of degree 1 or 2 are pinned directly; single-neighbor
// islands of higher degree are left to the PB encoding (no clause set
// suffices to prune them); degree-1 islands with multiple neighbors can
// never use a double bridge, nor a single bridge to another degree-1
// island; degree-8 islands must double every incident edge.
func (b *Builder) addPruningClauses(isl grid.Island, entries []incEntry, degreeOf map[int]int) {
	switch {
	case len(entries) == 1 && isl.Degree == 1:
		b.formula.Add(cnf.Clause{entries[0].vx})
		b.formula.Add(cnf.Clause{-entries[0].vd})
	case len(entries) == 1 && isl.Degree == 2:
		b.formula.Add(cnf.Clause{entries[0].vd})
		b.formula.Add(cnf.Clause{-entries[0].vx})
	case isl.Degree == 1 && len(entries) > 1:
		for _, en := range entries {
			b.formula.Add(cnf.Clause{-en.vd})
			if degreeOf[en.neighbor] == 1 {
				b.formula.Add(cnf.Clause{-en.vx})
			}
		}
	case isl.Degree == 8:
		for _, en := range entries {
			b.formula.Add(cnf.Clause{en.vd})
			b.formula.Add(cnf.Clause{-en.vx})
		}
	}
}
