package hashi

import (
	"context"
	"errors"

	"github.com/katalvlaran/hashi/encode"
	"github.com/katalvlaran/hashi/engine/astar"
	"github.com/katalvlaran/hashi/engine/brute"
	"github.com/katalvlaran/hashi/engine/dpll"
	"github.com/katalvlaran/hashi/engine/satdriven"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/metrics"
	"github.com/katalvlaran/hashi/render"
	"github.com/katalvlaran/hashi/solution"
)

// Algo names one of the four search engines, mirroring the CLI's --algo
// flag values.
type Algo string

const (
	AlgoSAT       Algo = "pysat"
	AlgoBacktrack Algo = "backtrack"
	AlgoAStar     Algo = "astar"
	AlgoBrute     Algo = "brute"
)

// ErrUnknownAlgo is returned by Solve for any Algo value other than the
// four named constants.
var ErrUnknownAlgo = errors.New("hashi: unknown algorithm")

// options configures Solve.
type options struct {
	recorder         *metrics.Recorder
	encodingFallback bool
}

// Option configures Solve.
type Option func(*options)

// WithRecorder attaches a metrics.Recorder to observe the chosen engine's
// run.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithEncodingFallback enables satdriven.WithEncodingFallback when algo is
// AlgoSAT. It has no effect for the other three engines.
func WithEncodingFallback() Option {
	return func(o *options) { o.encodingFallback = true }
}

// Solve encodes g, runs the engine selected by algo, and renders a found
// solution. It returns ("", nil) if the puzzle has no solution, and a
// non-nil error only for ErrUnknownAlgo, an encoding failure, cancellation,
// or brute.ErrTooManyVariables when AlgoBrute is given a puzzle whose
// encoding exceeds brute.MaxVariables.
func Solve(ctx context.Context, g grid.Grid, algo Algo, opts ...Option) (string, error) {
	o := options{}
	for _, apply := range opts {
		apply(&o)
	}

	res, err := encode.Build(g)
	if err != nil {
		return "", err
	}

	var (
		bridges []solution.Bridge
		found   bool
	)
	switch algo {
	case AlgoSAT:
		var satOpts []satdriven.Option
		if o.recorder != nil {
			satOpts = append(satOpts, satdriven.WithRecorder(o.recorder))
		}
		if o.encodingFallback {
			satOpts = append(satOpts, satdriven.WithEncodingFallback())
		}
		result, serr := satdriven.Solve(ctx, res, satOpts...)
		if serr != nil {
			return "", serr
		}
		bridges, found = result.Bridges, result.Found
	case AlgoBacktrack:
		var dpllOpts []dpll.Option
		if o.recorder != nil {
			dpllOpts = append(dpllOpts, dpll.WithRecorder(o.recorder))
		}
		result, serr := dpll.Solve(ctx, res, dpllOpts...)
		if serr != nil {
			return "", serr
		}
		bridges, found = result.Bridges, result.Found
	case AlgoAStar:
		var astarOpts []astar.Option
		if o.recorder != nil {
			astarOpts = append(astarOpts, astar.WithRecorder(o.recorder))
		}
		result, serr := astar.Solve(ctx, res, astarOpts...)
		if serr != nil {
			return "", serr
		}
		bridges, found = result.Bridges, result.Found
	case AlgoBrute:
		var bruteOpts []brute.Option
		if o.recorder != nil {
			bruteOpts = append(bruteOpts, brute.WithRecorder(o.recorder))
		}
		result, serr := brute.Solve(ctx, res, bruteOpts...)
		if serr != nil {
			return "", serr
		}
		bridges, found = result.Bridges, result.Found
	default:
		return "", ErrUnknownAlgo
	}

	if !found {
		return "", nil
	}
	return render.Render(g, res.Islands, bridges), nil
}
