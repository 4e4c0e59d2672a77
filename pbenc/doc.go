// Package pbenc encodes pseudo-Boolean equality constraints — Σ wᵢ·xᵢ = k
// over 0/1 literals — into conjunctive normal form.
//
// The default implementation, SequentialCounter, builds a chain of
// partial-sum state variables s[i][σ] meaning "after processing the first i
// inputs, the running sum equals σ", exactly as described in the module's
// degree-constraint encoding. It is deliberately O(n·k) in variables and
// clauses rather than the smaller BDD or totalizer encodings a pysat-backed
// implementation could delegate to, trading asymptotic size for being
// self-contained pure Go.
//
// OneHot is a second implementation: a direct enumeration over every
// combination of the input literals, asserting one clause per combination
// that doesn't sum to k and allocating no auxiliary variables. It exists as
// the fallback encoding engine/satdriven.WithEncodingFallback retries with,
// and is only practical because an island never has more than 4 incident
// edges (8 literals) in this domain.
//
// Encoder is a narrow interface so encode.Builder can accept an alternate
// implementation without committing to one, the way lvlath/prim_kruskal lets
// MSTOptions pick Prim or Kruskal behind one Option type.
package pbenc
