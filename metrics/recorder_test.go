package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/metrics"
)

func TestNewAssignsDistinctRunIDs(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	require.NotEmpty(t, a.RunID)
	require.NotEmpty(t, b.RunID)
	assert.NotEqual(t, a.RunID, b.RunID, "expected distinct RunIDs across Recorders")
}

func TestCountersAccumulate(t *testing.T) {
	r := metrics.New()
	r.Decision()
	r.Decision()
	r.Conflict()
	r.BlockingClause()
	r.BlockingClause()
	r.BlockingClause()

	snap := r.Snapshot()
	assert.Equal(t, 2, snap.Decisions)
	assert.Equal(t, 1, snap.Conflicts)
	assert.Equal(t, 3, snap.BlockingClauses)
}

func TestElapsedUsesInjectedClock(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := base
	clock := func() time.Time { return tick }

	r := metrics.New(metrics.WithClock(clock))
	tick = base.Add(250 * time.Millisecond)

	assert.Equal(t, 250*time.Millisecond, r.Elapsed())
}

func TestSnapshotRunIDMatchesRecorder(t *testing.T) {
	r := metrics.New()
	snap := r.Snapshot()
	assert.Equal(t, r.RunID, snap.RunID)
}
