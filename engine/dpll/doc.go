// Package dpll implements the DPLL search engine: unit propagation to a
// fixpoint, an optional pure-literal pass at the top of the search, forward
// checking before branching, a variable order fixed once per solve by
// descending clause-frequency, try-true-then-false branching, and a light
// CDCL-style learned clause on backtrack.
//
// What:
//
//   - Solve: runs the bootstrap/branch/backtrack loop over an encoded
//     puzzle and returns a validated, connected solution or reports
//     unsatisfiability.
//   - unitPropagate: shrinks the active clause set and assignment to a
//     fixpoint, or reports a conflict.
//   - forwardCheck: rejects an assignment immediately if any fully-assigned
//     clause is already falsified, before spending a branch on it.
//   - pureLiteralEliminate: assigns every variable that appears with only
//     one polarity across the active clauses, once, before branching
//     begins.
//
// Why: grounded on the original solve_with_backtracking (Python recursion
// over (index, assignment, clauses, learned_clauses)), translated to an
// explicit Go work stack of frames rather than native recursion, the same
// way dfs converts its own traversal to an explicit stack where recursion
// depth would otherwise track input size.
//
// Complexity: worst case O(2^n) over n CNF variables; unit propagation and
// forward checking prune the search tree in the common case but do not
// change the bound.
package dpll
