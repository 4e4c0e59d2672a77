// Package brute implements the brute-force engine: odometer enumeration of
// every 2^n truth assignment over the variables appearing in any clause,
// evaluating all clauses in original order for each and handing the first
// satisfying, validated assignment back to the caller.
//
// This is the correctness baseline, not a competitive search: it exists so
// every other engine's output can be checked against exhaustive enumeration
// on small puzzles. Per MaxVariables (default 22, matching the original
// solver's own printed warning threshold), Solve refuses to run rather than
// silently enumerating an intractable number of combinations.
//
// Grounded on the original solve_with_bruteforce's var_to_index-indexed
// itertools.product enumeration, translated into an explicit odometer over
// a []bool digit vector since Go has no generator/product primitive.
package brute
