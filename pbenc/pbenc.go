package pbenc

import "github.com/katalvlaran/hashi/cnf"

// Encoder produces a CNF encoding of Σ weights[i]·lits[i] = k, starting
// fresh variable allocation at nextVar. It returns the clauses and the
// next-available variable ID after any auxiliary variables it allocated.
type Encoder interface {
	EncodeEquals(lits []cnf.Lit, weights []int, k int, nextVar int) (clauses []cnf.Clause, newNextVar int)
}

// SequentialCounter is the default Encoder, implementing the sequential
// counter construction: maintain partial-sum state variables s[i][σ] seeded
// with s[0][0] = true, and for each input either propagate the running sum
// unchanged (literal false) or advance it by the literal's weight (literal
// true), with pairwise mutual exclusion among all live sums at each level.
type SequentialCounter struct{}

// EncodeEquals implements Encoder.
//
// An empty lits list yields the empty formula when k == 0, else the
// unsatisfiable pair. If k is not among the reachable sums after the last
// input, the whole constraint collapses to the canonical unsat pair
// {[1], [-1]} relative to a fresh variable, never disturbing variables
// already allocated by the caller.
func (SequentialCounter) EncodeEquals(lits []cnf.Lit, weights []int, k int, nextVar int) ([]cnf.Clause, int) {
	n := len(lits)
	if n == 0 {
		if k == 0 {
			return nil, nextVar
		}
		return unsatPair(nextVar)
	}

	var clauses []cnf.Clause
	fresh := func() int {
		v := nextVar
		nextVar++
		return v
	}

	// s[i] maps a reachable running sum to its state variable.
	s := make([]map[int]int, n+1)
	s[0] = map[int]int{0: fresh()}
	clauses = append(clauses, cnf.Clause{cnf.Lit(s[0][0])})

	for i := 1; i <= n; i++ {
		xi := lits[i-1]
		wi := weights[i-1]
		prev := s[i-1]
		curr := make(map[int]int)

		for sum, p := range prev {
			// Case 1: xi false -> sum stays at `sum`.
			if _, ok := curr[sum]; !ok {
				curr[sum] = fresh()
			}
			clauses = append(clauses, cnf.Clause{cnf.Lit(-p), xi, cnf.Lit(curr[sum])})

			// Case 2: xi true -> sum advances to sum+wi.
			next := sum + wi
			if _, ok := curr[next]; !ok {
				curr[next] = fresh()
			}
			clauses = append(clauses, cnf.Clause{cnf.Lit(-p), -xi, cnf.Lit(curr[next])})
		}

		for sumA, vA := range curr {
			for sumB, vB := range curr {
				if sumA != sumB {
					clauses = append(clauses, cnf.Clause{cnf.Lit(-vA), cnf.Lit(-vB)})
				}
			}
		}
		s[i] = curr
	}

	final, ok := s[n][k]
	if !ok {
		return unsatPair(nextVar)
	}
	clauses = append(clauses, cnf.Clause{cnf.Lit(final)})
	for sum, v := range s[n] {
		if sum != k {
			clauses = append(clauses, cnf.Clause{cnf.Lit(-v)})
		}
	}

	return clauses, nextVar
}

// unsatPair emits the canonical two-clause contradiction over a fresh
// variable, without touching any variable already allocated by the caller.
func unsatPair(nextVar int) ([]cnf.Clause, int) {
	v := nextVar
	nextVar++
	return []cnf.Clause{{cnf.Lit(v)}, {cnf.Lit(-v)}}, nextVar
}
