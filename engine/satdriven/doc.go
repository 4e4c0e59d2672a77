// Package satdriven implements the SAT-driven search engine: bootstrap an
// external CDCL solver with the encoded CNF, then repeatedly call Solve; on
// SAT, validate the model, and if it fails connectivity, add the blocking
// clause and continue. Terminate UNSAT when the solver returns false or a
// bounded number of learned clauses is exceeded.
//
// The engine.SATSolver this package drives against is an interface — no
// third-party SAT solver is vendored here, per the module's framing that
// only the interaction protocol is specified. naiveSolver is the in-tree
// reference implementation: a small unit-propagating DPLL search wrapped to
// satisfy the four-method contract, so this package has a working default
// without depending on an external solver binding.
package satdriven
