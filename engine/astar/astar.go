package astar

import (
	"container/heap"
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine"
	"github.com/katalvlaran/hashi/metrics"
	"github.com/katalvlaran/hashi/solution"
)

// options configures Solve.
type options struct {
	maxBlockingClauses int
	maxPops            int
	recorder           *metrics.Recorder
}

// Option configures Solve.
type Option func(*options)

// WithMaxBlockingClauses bounds how many goal states that fail connectivity
// the outer loop will reject before giving up.
func WithMaxBlockingClauses(n int) Option {
	return func(o *options) { o.maxBlockingClauses = n }
}

// WithMaxPops bounds how many states a single search may pop off the queue
// before giving up on that attempt, guarding against runaway state-space
// growth on larger puzzles. Zero (the default) means unbounded.
func WithMaxPops(n int) Option {
	return func(o *options) { o.maxPops = n }
}

// WithRecorder attaches a metrics.Recorder that observes every state
// expansion (as a decision), every dead-end goal state (as a conflict), and
// every blocking clause added. Nil (the default) records nothing.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{maxBlockingClauses: 10000, maxPops: 0}
}

// Solve runs the informed-search engine against an already-encoded puzzle:
// a best-first search over partial CNF assignments ordered by f = g + h,
// validating every goal state for connectivity and adding a blocking clause
// before retrying when a goal state is degree-correct but disconnected.
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
		model, err := search(ctx, clauses, o.maxPops, o.recorder)
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

// state is one node of the search: a (partial or complete) variable
// assignment reached after propagating every forced unit literal to a
// fixpoint.
type state struct {
	assignment map[int]bool
	g          int // depth: number of currently assigned variables
	h          int // count of fully-assigned, unsatisfied clauses
	insertion  int
}

func (s *state) priority() int { return s.g + s.h }

// pq is a min-heap of *state ordered by priority, with insertion order as
// the deterministic tie-break, following the dijkstra package's
// container/heap.Interface plumbing.
type pq []*state

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].priority() != q[j].priority() {
		return q[i].priority() < q[j].priority()
	}
	return q[i].insertion < q[j].insertion
}
func (q pq) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) {
	*q = append(*q, x.(*state))
}
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// search runs one best-first search attempt over clauses, returning the
// first goal state's model, or nil if the queue empties without finding
// one.
func search(ctx context.Context, clauses []cnf.Clause, maxPops int, recorder *metrics.Recorder) (cnf.Model, error) {
	variables := orderedVariables(clauses)

	root := &state{assignment: map[int]bool{}}
	propagate(clauses, root.assignment)
	root.g = len(root.assignment)
	root.h = countViolated(clauses, root.assignment)

	queue := &pq{root}
	heap.Init(queue)
	visited := map[string]bool{positiveKey(root.assignment): true}

	insertion := 1
	pops := 0
	for queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, engine.ErrCancelled
		default:
		}

		if maxPops > 0 && pops >= maxPops {
			return nil, nil
		}
		pops++
		current := heap.Pop(queue).(*state)

		if len(current.assignment) == len(variables) {
			if current.h == 0 {
				return toModel(variables, current.assignment), nil
			}
			if recorder != nil {
				recorder.Conflict()
			}
			continue
		}

		nextVar := -1
		for _, v := range variables {
			if _, ok := current.assignment[v]; !ok {
				nextVar = v
				break
			}
		}
		if nextVar == -1 {
			continue
		}

		for _, val := range [2]bool{true, false} {
			child := cloneAssignment(current.assignment)
			child[nextVar] = val
			propagate(clauses, child)
			key := positiveKey(child)
			if visited[key] {
				continue
			}
			visited[key] = true
			insertion++
			if recorder != nil {
				recorder.Decision()
			}
			heap.Push(queue, &state{
				assignment: child,
				g:          len(child),
				h:          countViolated(clauses, child),
				insertion:  insertion,
			})
		}
	}
	return nil, nil
}

// propagate assigns every currently derivable unit literal to assignment,
// to a fixpoint. A unit clause whose variable is already assigned the
// opposite value is left alone rather than treated as a hard conflict; the
// resulting violation is picked up by countViolated instead, so the
// heuristic can distinguish "close" dead ends from complete solutions.
func propagate(clauses []cnf.Clause, assignment map[int]bool) {
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			if c.Satisfied(assignment) {
				continue
			}
			var unit cnf.Lit
			count := 0
			for _, lit := range c {
				if _, ok := assignment[lit.Var()]; !ok {
					unit = lit
					count++
				}
			}
			if count != 1 {
				continue
			}
			if _, already := assignment[unit.Var()]; already {
				continue
			}
			assignment[unit.Var()] = unit.Sign()
			changed = true
		}
	}
}

// countViolated returns how many clauses in clauses are fully assigned by
// assignment yet unsatisfied: the heuristic h.
func countViolated(clauses []cnf.Clause, assignment map[int]bool) int {
	n := 0
	for _, c := range clauses {
		if c.FullyAssigned(assignment) && !c.Satisfied(assignment) {
			n++
		}
	}
	return n
}

// positiveKey returns the frozen-set-of-positive-literals dedup key for
// assignment: a sorted, comma-joined list of every variable assigned true.
func positiveKey(assignment map[int]bool) string {
	positives := make([]int, 0, len(assignment))
	for v, val := range assignment {
		if val {
			positives = append(positives, v)
		}
	}
	sort.Ints(positives)

	var b strings.Builder
	for i, v := range positives {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// orderedVariables returns every variable appearing in clauses, sorted by
// descending occurrence frequency, ties broken by ascending id.
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
	out := make(map[int]bool, len(src)+1)
	for k, v := range src {
		out[k] = v
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

// toModel converts assignment into a cnf.Model indexed by Var()-1, covering
// every variable up to the largest one in variables; a variable absent from
// assignment is false.
func toModel(variables []int, assignment map[int]bool) cnf.Model {
	maxVar := 0
	for _, v := range variables {
		if v > maxVar {
			maxVar = v
		}
	}
	out := make(cnf.Model, maxVar)
	for v := 1; v <= maxVar; v++ {
		if assignment[v] {
			out[v-1] = cnf.Lit(v)
		} else {
			out[v-1] = cnf.Lit(-v)
		}
	}
	return out
}
