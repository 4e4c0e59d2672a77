// Package astar implements the informed-search engine: a best-first search
// over partial CNF assignments ordered by f = g + h, where g is the number
// of currently assigned variables and h is the count of clauses that are
// fully assigned yet unsatisfied. Each popped state expands into two
// children — the next variable in a frequency-sorted order set true or
// false, after unit propagation — or is checked as a goal: a full
// assignment with h = 0.
//
// Grounded on the original AStarState/solve_with_astar (a domain-level
// priority-queue search over partial bridge placements), restated here at
// the CNF level shared by every other engine, and on lvlath's dijkstra
// package and tsp package's branch-and-bound queue for the
// container/heap.Interface plumbing: a slice-backed heap of *state, Less by
// priority, an insertion counter for deterministic tie-breaking in place of
// Python's implicit heap stability.
package astar
