package engine

import (
	"context"
	"errors"

	"github.com/katalvlaran/hashi/cnf"
	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/solution"
)

// ErrCancelled is returned by an engine's Solve when ctx is done before a
// solution (or proof of unsatisfiability) was reached. Per the module's
// cancellation model, this is a clean failure, never a partial or invalid
// solution.
var ErrCancelled = errors.New("engine: search cancelled")

// SATSolver is the narrow interaction contract every SAT-driven engine
// speaks to an external CDCL solver: load an initial CNF, search for any
// model, read it back once SAT, and add clauses between solves. No
// incrementality is assumed beyond "add clauses between solves."
type SATSolver interface {
	// Bootstrap loads an initial CNF, replacing any previously loaded
	// clauses.
	Bootstrap(clauses []cnf.Clause)
	// Solve searches for any model satisfying the currently loaded
	// clauses. The result of Model is defined only after Solve returns
	// true.
	Solve(ctx context.Context) (bool, error)
	// Model returns the most recent satisfying assignment.
	Model() cnf.Model
	// AddClause adds a clause to the solver's current clause set.
	AddClause(c cnf.Clause)
}

// Result is what every engine's Solve returns on success: the validated
// bridge list together with whether a solution was found at all.
type Result struct {
	Bridges []solution.Bridge
	Found   bool
}

// DecodeAndValidate decodes model against res's edge variables and islands,
// returning the bridges and nil error if the decoded solution is both
// degree-correct and connected. It is the single decision point every
// engine's validate-then-block loop calls before accepting a model.
func DecodeAndValidate(res *encode.Result, model cnf.Model) ([]solution.Bridge, error) {
	bridges := solution.Extract(model, res.EdgeVars)
	if err := solution.Validate(res.Islands, bridges); err != nil {
		return nil, err
	}
	return bridges, nil
}
