// Package dsu implements a disjoint-set union (union-find) over a dense
// range of integer elements, with full path compression and union-by-size.
//
// Unlike lvlath/prim_kruskal's inline union-find (which keys parent/rank
// maps by string vertex IDs, since core.Graph vertices are named), the
// elements here are already dense small integers — island indices — so the
// whole structure is a single signed []int: a root entry stores -size, a
// non-root entry stores its parent's index. This is the only component of
// the solver that touches connectivity directly; everything else treats the
// island graph as a set of bridge multiplicities.
package dsu
