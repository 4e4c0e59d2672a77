// Package engine declares the vocabulary every search engine shares: the
// four-method contract for an external CDCL SAT solver, and the common
// validate-then-block loop that turns "a CNF model" into "a connected,
// degree-correct Hashi solution" regardless of which of the four engines
// under engine/satdriven, engine/dpll, engine/astar, engine/brute produced
// the model.
//
// None of the four engines know about each other; the root hashi package
// (the orchestration façade) is the only package that imports all of them.
package engine
