package satdriven

import (
	"context"
	"errors"

	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine"
	"github.com/katalvlaran/hashi/metrics"
	"github.com/katalvlaran/hashi/pbenc"
	"github.com/katalvlaran/hashi/solution"
)

// options configures Solve.
type options struct {
	solver             engine.SATSolver
	maxBlockingClauses int
	encodingFallback   bool
	recorder           *metrics.Recorder
}

// Option configures Solve.
type Option func(*options)

// WithSolver overrides the engine.SATSolver used to drive the search. The
// default is the in-tree naiveSolver.
func WithSolver(s engine.SATSolver) Option {
	return func(o *options) { o.solver = s }
}

// WithMaxBlockingClauses bounds how many SAT-but-invalid models the loop
// will reject before giving up and reporting unsolvable, guarding against a
// pathological encoding that admits unboundedly many disconnected models.
func WithMaxBlockingClauses(n int) Option {
	return func(o *options) { o.maxBlockingClauses = n }
}

// WithEncodingFallback enables retrying with pbenc.OneHot's direct
// enumerative encoding whenever the first attempt ends without a validated
// model, per the module's "small matrix of (PB-encoding,
// cardinality-encoding) choices" note.
func WithEncodingFallback() Option {
	return func(o *options) { o.encodingFallback = true }
}

// WithRecorder attaches a metrics.Recorder that observes every blocking
// clause added during the search. Nil (the default) records nothing.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{solver: New(), maxBlockingClauses: 10000}
}

// Solve runs the bootstrap/solve/validate/block loop of the SAT-driven
// engine against an already-encoded puzzle: bootstrap the solver with the
// encoded CNF, repeatedly call Solve, and on SAT validate the model against
// degree and connectivity. A valid model is returned immediately; an
// invalid one is excluded by its blocking clause and the search continues.
// The loop terminates UNSAT either when the solver itself returns false or
// when the blocking-clause bound is exceeded. With WithEncodingFallback, a
// first attempt that ends without a validated model (solver UNSAT, a
// swallowed solver error, or the bound exhausted) re-encodes with
// pbenc.OneHot and tries once more, with the same solver, before reporting
// unsolvable.
func Solve(ctx context.Context, res *encode.Result, opts ...Option) (engine.Result, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	result, err := attempt(ctx, res, o)
	if err != nil {
		return engine.Result{}, err
	}
	if result.Found || !o.encodingFallback {
		return result, nil
	}

	fallbackRes, rerr := encode.Rebuild(res.Islands, res.Edges, encode.WithPBEncoder(pbenc.OneHot{}))
	if rerr != nil {
		return engine.Result{Found: false}, nil
	}
	return attempt(ctx, fallbackRes, o)
}

func attempt(ctx context.Context, res *encode.Result, o options) (engine.Result, error) {
	solver := o.solver
	solver.Bootstrap(res.Formula.Clauses)

	for blocked := 0; blocked < o.maxBlockingClauses; blocked++ {
		select {
		case <-ctx.Done():
			return engine.Result{}, engine.ErrCancelled
		default:
		}

		sat, err := solver.Solve(ctx)
		if err != nil {
			if errors.Is(err, engine.ErrCancelled) || ctx.Err() != nil {
				return engine.Result{}, engine.ErrCancelled
			}
			// Any other solver error (e.g. a real external CDCL binding
			// crashing or refusing the input) is swallowed per the
			// module's error-handling contract: try the next encoding
			// combination, or report unsolvable if none remains.
			return engine.Result{Found: false}, nil
		}
		if !sat {
			return engine.Result{Found: false}, nil
		}

		model := solver.Model()
		bridges, verr := engine.DecodeAndValidate(res, model)
		if verr == nil {
			return engine.Result{Bridges: bridges, Found: true}, nil
		}
		solver.AddClause(solution.BlockingClause(model))
		if o.recorder != nil {
			o.recorder.BlockingClause()
		}
	}
	return engine.Result{Found: false}, nil
}
