// Package metrics records per-solve counters: branching decisions,
// conflicts, blocking clauses added, and wall-clock duration. A Recorder is
// owned per solve attempt, never shared across concurrent solves.
//
// What:
//
//   - Recorder: accumulates counters via Decision, Conflict, and
//     BlockingClause, and reports Elapsed time since it was created.
//   - RunID: a UUID tagging one solve attempt, for correlating a Recorder's
//     snapshot with a single CLI invocation or log line.
//
// Why: grounded on the original utils/metrics.profile decorator, which
// wrapped a solver call to report elapsed time and peak memory. Go has no
// direct tracemalloc equivalent worth carrying over (runtime.MemStats is
// process-wide, not call-scoped, and would be noise under concurrent
// tests), so this package narrows to counters an engine can report
// accurately about itself, plus wall-clock time.
package metrics
