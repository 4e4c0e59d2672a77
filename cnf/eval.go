package cnf

import (
	"sort"
	"strconv"
	"strings"
)

// Satisfied reports whether clause c is satisfied by the partial assignment
// assigned (var -> value). A variable absent from assigned is treated as
// unassigned and does not satisfy any literal on it.
func (c Clause) Satisfied(assigned map[int]bool) bool {
	for _, lit := range c {
		if val, ok := assigned[lit.Var()]; ok {
			if (lit.Sign() && val) || (!lit.Sign() && !val) {
				return true
			}
		}
	}
	return false
}

// FullyAssigned reports whether every variable in c has a value in assigned.
func (c Clause) FullyAssigned(assigned map[int]bool) bool {
	for _, lit := range c {
		if _, ok := assigned[lit.Var()]; !ok {
			return false
		}
	}
	return true
}

// CanonicalKey returns a stable string key for a clause, sorted by literal
// value, suitable for deduplicating clauses in a set. Mirrors the
// frozenset-as-hash-key trick the original solver relies on, expressed here
// as a sorted-vector canonical form (per the module's design notes on
// representing clauses as hashable keys without a native frozenset).
func (c Clause) CanonicalKey() string {
	sorted := make([]int, len(c))
	for i, lit := range c {
		sorted[i] = int(lit)
	}
	sort.Ints(sorted)

	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Dedup returns the clauses of clauses with exact duplicates (by
// CanonicalKey) removed, preserving first-seen order.
func Dedup(clauses []Clause) []Clause {
	seen := make(map[string]struct{}, len(clauses))
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		key := c.CanonicalKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Vars returns the sorted, deduplicated set of variable IDs appearing in
// clauses.
func Vars(clauses []Clause) []int {
	set := make(map[int]struct{})
	for _, c := range clauses {
		for _, lit := range c {
			set[lit.Var()] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
