package metrics

import (
	"time"

	"github.com/google/uuid"
)

// Recorder accumulates counters for a single solve attempt. The zero value
// is not ready for use; call New.
type Recorder struct {
	RunID string

	decisions       int
	conflicts       int
	blockingClauses int

	now   func() time.Time
	start time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the clock used for the start instant and Elapsed, for
// deterministic tests. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// New returns a Recorder tagged with a fresh RunID and started immediately.
func New(opts ...Option) *Recorder {
	r := &Recorder{RunID: uuid.NewString(), now: time.Now}
	for _, apply := range opts {
		apply(r)
	}
	r.start = r.now()
	return r
}

// Decision records one branching decision.
func (r *Recorder) Decision() { r.decisions++ }

// Conflict records one search conflict (a branch that backtracked).
func (r *Recorder) Conflict() { r.conflicts++ }

// BlockingClause records one blocking clause added after a model failed
// connectivity validation.
func (r *Recorder) BlockingClause() { r.blockingClauses++ }

// Elapsed returns the duration since the Recorder was created.
func (r *Recorder) Elapsed() time.Duration { return r.now().Sub(r.start) }

// Snapshot is an immutable view of a Recorder's counters at a point in
// time, suitable for logging or the CLI's --metrics output.
type Snapshot struct {
	RunID           string
	Decisions       int
	Conflicts       int
	BlockingClauses int
	Elapsed         time.Duration
}

// Snapshot captures the Recorder's current state.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		RunID:           r.RunID,
		Decisions:       r.decisions,
		Conflicts:       r.conflicts,
		BlockingClauses: r.blockingClauses,
		Elapsed:         r.Elapsed(),
	}
}
