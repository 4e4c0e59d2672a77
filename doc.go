// Package hashi (root) is a Hashiwokakero ("Bridges") puzzle solver: read a
// grid of numbered islands, encode the puzzle's degree and orthogonal
// bridge-crossing constraints as CNF, search for a satisfying assignment
// with one of four interchangeable engines, validate it for connectivity,
// and render a solution back to the grid's character form.
//
// Under the hood, the module is organized as:
//
//   - dsu, grid, hashigraph: the puzzle's data model — union-find,
//     island/grid parsing, and candidate-edge discovery.
//   - cnf, pbenc, encode: the CNF layer — literals/clauses/models, a
//     pseudo-Boolean equality encoder, and the degree/crossing builder.
//   - solution, render: decoding a CNF model into bridges, validating
//     degree and connectivity, and rendering back to text.
//   - engine/satdriven, engine/dpll, engine/astar, engine/brute: four
//     engines sharing one validate-then-block loop, since the encoder never
//     emits connectivity clauses.
//   - metrics: per-solve decision/conflict/blocking-clause counters.
//   - cmd/hashi: the CLI front end.
//
// This package itself is the orchestration façade: Algo names the four
// selectable engines (mirroring the CLI's --algo flag values), and Solve
// encodes a grid, dispatches to the chosen engine, and renders a found
// solution back to text — or returns ("", nil) when the puzzle has no
// solution. Grounded on lvlath's prim_kruskal.Compute, which selects Prim or
// Kruskal behind one opts.Method switch; here the switch selects one of
// engine/satdriven, engine/dpll, engine/astar, engine/brute.
package hashi
