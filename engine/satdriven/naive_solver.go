package satdriven

import (
	"context"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/engine"
)

// naiveSolver is a minimal in-tree engine.SATSolver: unit propagation to a
// fixpoint followed by chronological backtracking over the first
// unassigned variable, true before false. It exists so the package has a
// usable default solver without vendoring a real CDCL implementation; its
// performance does not need to rival a production solver, only to satisfy
// the narrow SATSolver contract faithfully.
type naiveSolver struct {
	clauses []cnf.Clause
	model   cnf.Model
	numVars int
}

// New returns a fresh naiveSolver, ready for Bootstrap.
func New() *naiveSolver {
	return &naiveSolver{}
}

func (s *naiveSolver) Bootstrap(clauses []cnf.Clause) {
	s.clauses = make([]cnf.Clause, len(clauses))
	for i, c := range clauses {
		s.clauses[i] = c.Clone()
	}
	s.numVars = 0
	for _, c := range s.clauses {
		for _, lit := range c {
			if v := lit.Var(); v > s.numVars {
				s.numVars = v
			}
		}
	}
}

func (s *naiveSolver) AddClause(c cnf.Clause) {
	s.clauses = append(s.clauses, c.Clone())
	for _, lit := range c {
		if v := lit.Var(); v > s.numVars {
			s.numVars = v
		}
	}
}

func (s *naiveSolver) Model() cnf.Model {
	return s.model
}

// Solve searches for any satisfying assignment over the current clause set,
// returning false (no error) when the formula is unsatisfiable and
// engine.ErrCancelled when ctx is done before a verdict is reached.
func (s *naiveSolver) Solve(ctx context.Context) (bool, error) {
	assigned := make(map[int]bool, s.numVars)
	ok, err := s.search(ctx, assigned)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	model := make(cnf.Model, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		val, known := assigned[v]
		if !known {
			val = true // unconstrained variables default true
		}
		if val {
			model[v-1] = cnf.Lit(v)
		} else {
			model[v-1] = cnf.Lit(-v)
		}
	}
	s.model = model
	return true, nil
}

// search performs unit propagation followed by branching on the first
// unassigned variable found in clause order.
func (s *naiveSolver) search(ctx context.Context, assigned map[int]bool) (bool, error) {
	select {
	case <-ctx.Done():
		return false, engine.ErrCancelled
	default:
	}

	working := make(map[int]bool, len(assigned))
	for k, v := range assigned {
		working[k] = v
	}
	if !propagate(s.clauses, working) {
		return false, nil
	}

	unassigned := -1
	for _, c := range s.clauses {
		if c.FullyAssigned(working) {
			if !c.Satisfied(working) {
				return false, nil
			}
			continue
		}
		for _, lit := range c {
			if _, ok := working[lit.Var()]; !ok {
				unassigned = lit.Var()
				break
			}
		}
		if unassigned != -1 {
			break
		}
	}
	if unassigned == -1 {
		for k, v := range working {
			assigned[k] = v
		}
		return true, nil
	}

	for _, val := range [2]bool{true, false} {
		trial := make(map[int]bool, len(working)+1)
		for k, v := range working {
			trial[k] = v
		}
		trial[unassigned] = val
		ok, err := s.search(ctx, trial)
		if err != nil {
			return false, err
		}
		if ok {
			for k, v := range trial {
				assigned[k] = v
			}
			return true, nil
		}
	}
	return false, nil
}

// propagate runs unit propagation to a fixpoint, mutating assigned in
// place. It returns false on a conflict (an empty, falsified clause).
func propagate(clauses []cnf.Clause, assigned map[int]bool) bool {
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			if c.Satisfied(assigned) {
				continue
			}
			var unit cnf.Lit
			count := 0
			for _, lit := range c {
				if _, ok := assigned[lit.Var()]; !ok {
					unit = lit
					count++
				}
			}
			if count == 0 {
				return false // conflict: every literal false
			}
			if count == 1 {
				if v, ok := assigned[unit.Var()]; ok && v != unit.Sign() {
					return false
				}
				assigned[unit.Var()] = unit.Sign()
				changed = true
			}
		}
	}
	return true
}
