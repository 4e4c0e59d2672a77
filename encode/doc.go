// Package encode builds the full CNF model of a Hashiwokakero puzzle: one
// pair of mutually exclusive edge variables (vx: carries a single bridge,
// vd: carries a double bridge) per candidate edge, a pseudo-Boolean equality
// constraint per island tying its incident edge variables to its declared
// degree, and four mutual-exclusion clauses (one per pairing of the two
// edges' variables) per crossing edge pair. It does not encode
// connectivity — that is left to the blocking-clause retry loop every
// search engine shares.
//
// Builder threads the growing cnf.Formula, the edge-variable map, and the
// variable counter through the four phases the way lvlath/matrix.Builder
// accumulates state across chained calls, instead of the free function with
// closures the original Python encoder used.
package encode
