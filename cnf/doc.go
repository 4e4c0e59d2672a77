// Package cnf defines the shared conjunctive-normal-form vocabulary used by
// every encoder and search engine in this module: literals, clauses, an
// append-only formula with a monotonic variable counter, and a complete
// model.
//
// Variable IDs are positive and dense, starting at 1. A literal's sign
// encodes polarity: a positive Lit asserts its variable true, a negative Lit
// asserts it false. Nothing in this package knows about islands, bridges, or
// grids — it is the same kind of narrow, dependency-free vocabulary core
// gives to Vertex/Edge for the rest of lvlath.
package cnf
