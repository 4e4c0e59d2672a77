package brute

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine"
	"github.com/katalvlaran/hashi/metrics"
	"github.com/katalvlaran/hashi/solution"
)

// MaxVariables is the default cutoff above which Solve refuses to
// enumerate, matching the original solver's own "likely too large for
// brute-force" warning threshold.
const MaxVariables = 22

// ErrTooManyVariables is returned when the encoded puzzle has more
// variables than the configured maximum and Solve declines to run.
var ErrTooManyVariables = errors.New("brute: too many variables for exhaustive enumeration")

// options configures Solve.
type options struct {
	maxVariables       int
	maxBlockingClauses int
	recorder           *metrics.Recorder
}

// Option configures Solve.
type Option func(*options)

// WithMaxVariables overrides MaxVariables.
func WithMaxVariables(n int) Option {
	return func(o *options) { o.maxVariables = n }
}

// WithMaxBlockingClauses bounds how many degree-correct-but-disconnected
// assignments the outer loop will reject before giving up.
func WithMaxBlockingClauses(n int) Option {
	return func(o *options) { o.maxBlockingClauses = n }
}

// WithRecorder attaches a metrics.Recorder that observes every blocking
// clause added after an enumerated assignment fails connectivity. Nil (the
// default) records nothing.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{maxVariables: MaxVariables, maxBlockingClauses: 10000}
}

// Solve enumerates every truth assignment over the encoded puzzle's
// variables in odometer order, returning the first assignment that
// satisfies every clause and validates as a connected, degree-correct
// solution. It returns ErrTooManyVariables instead of running when the
// variable count exceeds the configured maximum.
func Solve(ctx context.Context, res *encode.Result, opts ...Option) (engine.Result, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if len(res.Islands) == 0 {
		return engine.Result{Found: true}, nil
	}
	clauses := cloneClauses(res.Formula.Clauses)

	variables := sortedVars(clauses)
	if len(variables) > o.maxVariables {
		return engine.Result{}, ErrTooManyVariables
	}

	for blocked := 0; blocked < o.maxBlockingClauses; blocked++ {
		model, err := enumerate(ctx, variables, clauses)
		if err != nil {
			return engine.Result{}, err
		}
		if model == nil {
			return engine.Result{Found: false}, nil
		}
		bridges, verr := engine.DecodeAndValidate(res, model)
		if verr == nil {
			return engine.Result{Bridges: bridges, Found: true}, nil
		}
		clauses = append(clauses, solution.BlockingClause(model))
		if o.recorder != nil {
			o.recorder.BlockingClause()
		}
	}
	return engine.Result{Found: false}, nil
}

// enumerate walks every assignment over variables in odometer order (digit
// 0 first, mirroring itertools.product([False, True], ...)), returning the
// first one that satisfies every clause.
func enumerate(ctx context.Context, variables []int, clauses []cnf.Clause) (cnf.Model, error) {
	n := len(variables)
	digits := make([]bool, n) // false = False, true = True; all start False

	total := uint64(1) << uint(n)
	for count := uint64(0); count < total; count++ {
		if count%4096 == 0 {
			select {
			case <-ctx.Done():
				return nil, engine.ErrCancelled
			default:
			}
		}

		assigned := make(map[int]bool, n)
		for i, v := range variables {
			assigned[v] = digits[i]
		}
		if allSatisfied(clauses, assigned) {
			return toModel(variables, digits), nil
		}

		increment(digits)
	}
	return nil, nil
}

// increment advances digits to the next odometer reading, least
// significant digit first.
func increment(digits []bool) {
	for i := 0; i < len(digits); i++ {
		if !digits[i] {
			digits[i] = true
			return
		}
		digits[i] = false
	}
}

func allSatisfied(clauses []cnf.Clause, assigned map[int]bool) bool {
	for _, c := range clauses {
		if !c.Satisfied(assigned) {
			return false
		}
	}
	return true
}

func sortedVars(clauses []cnf.Clause) []int {
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

func toModel(variables []int, digits []bool) cnf.Model {
	out := make(cnf.Model, len(variables))
	for i, v := range variables {
		if digits[i] {
			out[i] = cnf.Lit(v)
		} else {
			out[i] = cnf.Lit(-v)
		}
	}
	return out
}

func cloneClauses(src []cnf.Clause) []cnf.Clause {
	out := make([]cnf.Clause, len(src))
	for i, c := range src {
		out[i] = c.Clone()
	}
	return out
}
