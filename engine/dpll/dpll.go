package dpll

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

// ErrTooManyDecisions is returned when a solve exceeds WithMaxDecisions, a
// guard against a pathological encoding driving the stack unboundedly deep.
var ErrTooManyDecisions = errors.New("dpll: exceeded maximum decision count")

// options configures Solve.
type options struct {
	maxDecisions       int
	maxBlockingClauses int
	recorder           *metrics.Recorder
}

// Option configures Solve.
type Option func(*options)

// WithMaxDecisions bounds the number of branching decisions a single search
// may make before giving up with ErrTooManyDecisions. Zero (the default)
// means unbounded.
func WithMaxDecisions(n int) Option {
	return func(o *options) { o.maxDecisions = n }
}

// WithMaxBlockingClauses bounds how many degree-correct-but-disconnected
// models the outer loop will reject before giving up and reporting
// unsolvable: the encoding carries no connectivity clauses (see
// encode.Builder.Phase4Connectivity), so a model DPLL returns still needs
// the shared validate-then-block treatment every engine applies.
func WithMaxBlockingClauses(n int) Option {
	return func(o *options) { o.maxBlockingClauses = n }
}

// WithRecorder attaches a metrics.Recorder that observes every branching
// decision, every backtrack (conflict), and every blocking clause added
// during the search. Nil (the default) records nothing.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{maxDecisions: 0, maxBlockingClauses: 10000}
}

// frame is one level of the explicit work stack, replacing a single
// invocation of the original recursive backtrack(index, assignment,
// clauses, learned_clauses).
type frame struct {
	index      int
	working    map[int]bool // assignment inherited from the parent, pre-propagation
	clauses    []cnf.Clause // this frame's clause set, as inherited from the parent
	propagated []cnf.Clause // clauses remaining after this frame's own unit propagation
	assignment map[int]bool // assignment after this frame's own unit propagation
	tried      int          // 0 = not started, 1 = true branch attempted, 2 = both attempted
}

// Solve runs the DPLL engine against an already-encoded puzzle: unit
// propagation to a fixpoint, a pure-literal pass at the top of the search,
// forward checking before every branch, descending-frequency variable
// order fixed once per solve, and a learned clause recorded on a frame once
// both of its branches have failed; that clause is not passed to any other
// frame.
func Solve(ctx context.Context, res *encode.Result, opts ...Option) (engine.Result, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if len(res.Islands) == 0 {
		return engine.Result{Found: true}, nil
	}
	clauses := cloneClauses(res.Formula.Clauses)

	for blocked := 0; blocked < o.maxBlockingClauses; blocked++ {
		variables := orderedVariables(clauses)
		assignment := make(map[int]bool, len(variables))
		pureLiteralEliminate(clauses, assignment)

		model, _, err := search(ctx, variables, clauses, assignment, o.maxDecisions, o.recorder)
		if err != nil {
			return engine.Result{}, err
		}
		if model == nil {
			return engine.Result{Found: false}, nil
		}

		cnfModel := toModel(variables, model)
		bridges, verr := engine.DecodeAndValidate(res, cnfModel)
		if verr == nil {
			return engine.Result{Bridges: bridges, Found: true}, nil
		}
		clauses = append(clauses, solution.BlockingClause(cnfModel))
		if o.recorder != nil {
			o.recorder.BlockingClause()
		}
	}
	return engine.Result{Found: false}, nil
}

// search drives the explicit work stack until it finds a complete,
// conflict-free assignment or exhausts every branch.
func search(ctx context.Context, variables []int, clauses0 []cnf.Clause, seed map[int]bool, maxDecisions int, recorder *metrics.Recorder) (map[int]bool, int, error) {
	stack := []*frame{{index: 0, working: seed, clauses: clauses0}}
	decisions := 0

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, decisions, engine.ErrCancelled
		default:
		}

		top := stack[len(stack)-1]

		if top.tried == 0 {
			assignment := cloneAssignment(top.working)
			propagated, ok := unitPropagate(top.clauses, assignment)
			if !ok || !forwardCheck(propagated, assignment) {
				if recorder != nil {
					recorder.Conflict()
				}
				stack = stack[:len(stack)-1]
				continue
			}
			top.propagated = propagated
			top.assignment = assignment

			if top.index == len(variables) {
				return assignment, decisions, nil
			}

			v := variables[top.index]
			if _, already := assignment[v]; already {
				stack[len(stack)-1] = &frame{index: top.index + 1, working: assignment, clauses: propagated}
				continue
			}

			if maxDecisions > 0 && decisions >= maxDecisions {
				return nil, decisions, ErrTooManyDecisions
			}
			decisions++
			if recorder != nil {
				recorder.Decision()
			}
			top.tried = 1
			stack = append(stack, &frame{
				index:   top.index + 1,
				working: assignWith(assignment, v, true),
				clauses: cloneClauses(propagated),
			})
			continue
		}

		// We are revisited after a child branch failed: top.tried tells us
		// which branch just returned empty-handed.
		v := variables[top.index]
		if top.tried == 1 {
			top.tried = 2
			stack = append(stack, &frame{
				index:   top.index + 1,
				working: assignWith(top.assignment, v, false),
				clauses: cloneClauses(top.propagated),
			})
			continue
		}

		// Both branches failed: record the learned clause on this frame,
		// then backtrack further. The frame is popped right after, so the
		// clause does not reach any other frame.
		learned := conflictClause(top.propagated, assignWith(top.assignment, v, false))
		if len(learned) > 0 {
			top.clauses = append(top.clauses, learned)
			top.propagated = append(top.propagated, learned)
		}
		stack = stack[:len(stack)-1]
	}

	return nil, decisions, nil
}

// unitPropagate shrinks clauses against assignment to a fixpoint, mutating
// assignment in place and returning the surviving (non-unit, unsatisfied)
// clauses. It reports false on conflict.
func unitPropagate(clauses []cnf.Clause, assignment map[int]bool) ([]cnf.Clause, bool) {
	active := clauses
	changed := true
	for changed {
		changed = false
		next := make([]cnf.Clause, 0, len(active))
		for _, c := range active {
			if c.Satisfied(assignment) {
				continue
			}
			var unassigned cnf.Clause
			for _, lit := range c {
				if _, ok := assignment[lit.Var()]; !ok {
					unassigned = append(unassigned, lit)
				}
			}
			if len(unassigned) == 0 {
				return nil, false
			}
			if len(unassigned) == 1 {
				lit := unassigned[0]
				if v, ok := assignment[lit.Var()]; ok && v != lit.Sign() {
					return nil, false
				}
				assignment[lit.Var()] = lit.Sign()
				changed = true
				continue
			}
			next = append(next, unassigned)
		}
		active = next
	}
	return active, true
}

// forwardCheck rejects assignment immediately if any fully-assigned clause
// in clauses is already falsified.
func forwardCheck(clauses []cnf.Clause, assignment map[int]bool) bool {
	for _, c := range clauses {
		if c.FullyAssigned(assignment) && !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// pureLiteralEliminate assigns, once, every variable that appears with only
// one polarity across clauses, to the value that satisfies every occurrence.
func pureLiteralEliminate(clauses []cnf.Clause, assignment map[int]bool) {
	positive := make(map[int]bool)
	negative := make(map[int]bool)
	for _, c := range clauses {
		for _, lit := range c {
			if lit.Sign() {
				positive[lit.Var()] = true
			} else {
				negative[lit.Var()] = true
			}
		}
	}
	for v := range positive {
		if !negative[v] {
			assignment[v] = true
		}
	}
	for v := range negative {
		if !positive[v] {
			assignment[v] = false
		}
	}
}

// conflictClause builds a learned clause from the clauses that conflicted
// with assignment: for every literal whose variable is assigned the
// opposite of what the literal requires, the clause gains that literal's
// negation. Mirrors the original solver's CDCL-flavored conflict-clause
// construction.
func conflictClause(clauses []cnf.Clause, assignment map[int]bool) cnf.Clause {
	seen := make(map[cnf.Lit]bool)
	var out cnf.Clause
	for _, c := range clauses {
		for _, lit := range c {
			val, ok := assignment[lit.Var()]
			if !ok {
				continue
			}
			if lit.Sign() == val {
				continue
			}
			neg := lit.Negate()
			if !seen[neg] {
				seen[neg] = true
				out = append(out, neg)
			}
		}
	}
	return out
}

// orderedVariables returns every variable appearing in clauses, sorted by
// descending occurrence frequency (ties broken by ascending variable id for
// determinism), mirroring the original Counter-based ordering.
func orderedVariables(clauses []cnf.Clause) []int {
	freq := make(map[int]int)
	for _, c := range clauses {
		for _, lit := range c {
			freq[lit.Var()]++
		}
	}
	vars := make([]int, 0, len(freq))
	for v := range freq {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool {
		if freq[vars[i]] != freq[vars[j]] {
			return freq[vars[i]] > freq[vars[j]]
		}
		return vars[i] < vars[j]
	})
	return vars
}

func cloneAssignment(src map[int]bool) map[int]bool {
	out := make(map[int]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func assignWith(src map[int]bool, v int, val bool) map[int]bool {
	out := cloneAssignment(src)
	out[v] = val
	return out
}

func cloneClauses(src []cnf.Clause) []cnf.Clause {
	out := make([]cnf.Clause, len(src))
	for i, c := range src {
		out[i] = c.Clone()
	}
	return out
}

// toModel converts a variable->bool assignment into a cnf.Model indexed by
// Var()-1, covering every variable up to the largest one in variables and
// defaulting any variable absent from assignment to true.
func toModel(variables []int, assignment map[int]bool) cnf.Model {
	maxVar := 0
	for _, v := range variables {
		if v > maxVar {
			maxVar = v
		}
	}
	out := make(cnf.Model, maxVar)
	for v := 1; v <= maxVar; v++ {
		val, ok := assignment[v]
		if !ok {
			val = true
		}
		if val {
			out[v-1] = cnf.Lit(v)
		} else {
			out[v-1] = cnf.Lit(-v)
		}
	}
	return out
}
