package pbenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/pbenc"
)

func TestOneHotMatchesDirectSum(t *testing.T) {
	cases := []struct {
		name    string
		weights []int
		k       int
	}{
		{"three_ones_k1", []int{1, 1, 1}, 1},
		{"three_ones_k2", []int{1, 1, 1}, 2},
		{"mixed_weights_k2", []int{1, 2, 1}, 2},
		{"mixed_weights_k0", []int{1, 2, 1}, 0},
		{"degree8_doubles", []int{1, 2, 1, 2}, 4},
		{"unreachable_k99", []int{1, 2}, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.weights)
			lits := make([]cnf.Lit, n)
			for i := range lits {
				lits[i] = cnf.Lit(i + 1)
			}
			enc := pbenc.OneHot{}
			clauses, newNextVar := enc.EncodeEquals(lits, tc.weights, tc.k, n+1)
			totalVars := newNextVar - 1

			reachable := bruteForceReachable(clauses, n, totalVars)
			for mask := 0; mask < (1 << n); mask++ {
				want := directSumMatches(tc.weights, n, mask, tc.k)
				assert.Equal(t, want, reachable[mask], "mask %0*b", n, mask)
			}
		})
	}
}

func TestOneHotAllocatesNoAuxiliaryVariables(t *testing.T) {
	enc := pbenc.OneHot{}
	lits := []cnf.Lit{1, 2, 3}
	_, next := enc.EncodeEquals(lits, []int{1, 2, 1}, 2, 4)
	assert.Equal(t, 4, next, "no auxiliary variables allocated")
}

func TestOneHotEmptyLits(t *testing.T) {
	enc := pbenc.OneHot{}

	clauses, next := enc.EncodeEquals(nil, nil, 0, 5)
	assert.Empty(t, clauses, "empty lits, k=0")
	assert.Equal(t, 5, next)

	clauses, next = enc.EncodeEquals(nil, nil, 1, 5)
	assert.Len(t, clauses, 2, "empty lits, k=1: want unsat pair")
	assert.Equal(t, 6, next)
}
