// Package launcher starts the fixed set of Streamlit children and waits for
// all of them to exit. It is structured into small files by concern:
//
//   - launcher.go: core Launcher type, constructor, config.
//   - executor.go: Executor/Process seam over os/exec (swappable in tests).
//   - spawn.go: ordered, non-blocking spawning of the children.
//   - wait.go: the join barrier and per-run results.
//   - status.go: read-only StackStatus projection for the status API.
//   - types.go: child states and runtime bookkeeping.
//   - events.go, eventpub_memory.go: lifecycle event publishing.
//   - metrics.go: Prometheus instrumentation.
//
// The launcher deliberately does less than a general supervisor: spawns are
// fire-and-forget (no readiness probing, no restarts, no backoff), children
// keep the parent's stdout/stderr, failed spawns do not abort the run, and
// the aggregate outcome never changes the process exit code. Interrupt
// delivery to children is left to OS defaults; no signal handling or kill
// path exists here.
package launcher
