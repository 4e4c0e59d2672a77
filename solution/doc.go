// Package solution decodes a satisfying CNF model back into concrete bridge
// multiplicities and verifies the connectivity invariant the CNF encoding
// itself does not enforce.
//
// Every search engine shares the same loop: decode a model with Extract,
// check it with Validate, and if it fails, append BlockingClause to the
// formula and search again. Grounded on prim_kruskal's
// ErrDisconnected/union-find connectivity check, generalized from MST edges
// to decoded bridge multiplicities.
package solution
