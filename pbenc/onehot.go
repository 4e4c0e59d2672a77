package pbenc

import "github.com/katalvlaran/hashi/cnf"

// OneHot is the direct, enumerative alternative to SequentialCounter: for
// every one of the 2^n combinations of the input literals that does not sum
// to k, it asserts the clause forbidding exactly that combination. It
// allocates no auxiliary variables, trading clause count (exponential in n)
// for simplicity; suitable only where n is small, as it always is here
// (an island has at most 4 incident edges, each contributing two
// literals, so n never exceeds 8).
type OneHot struct{}

// EncodeEquals implements Encoder.
func (OneHot) EncodeEquals(lits []cnf.Lit, weights []int, k int, nextVar int) ([]cnf.Clause, int) {
	n := len(lits)
	if n == 0 {
		if k == 0 {
			return nil, nextVar
		}
		return unsatPair(nextVar)
	}

	var clauses []cnf.Clause
	reachable := false
	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		sum := 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sum += weights[i]
			}
		}
		if sum == k {
			reachable = true
			continue
		}
		clause := make(cnf.Clause, n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				clause[i] = -lits[i]
			} else {
				clause[i] = lits[i]
			}
		}
		clauses = append(clauses, clause)
	}
	if !reachable {
		return unsatPair(nextVar)
	}
	return clauses, nextVar
}
