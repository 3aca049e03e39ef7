// Package pipeline runs the ETL stages in order and owns the error taxonomy
// shared by all of them.
//
// Stages are pure batch transforms executed sequentially; there is no queue,
// retry, or recovery machinery. The runner tags each run with a UUID, logs
// stage start/completion with durations, and holds a file lock so two runs
// never write the same data directories concurrently.
//
// Per-row anomalies never surface here: components absorb them and report
// aggregate counts. Only structural failures (missing inputs, empty required
// tables) abort a run.
package pipeline
