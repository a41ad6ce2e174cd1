package launcher

import (
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// State represents the lifecycle state of one child.
type State string

const (
	StatePending     State = "pending"
	StateRunning     State = "running"
	StateExited      State = "exited"
	StateSpawnFailed State = "spawn_failed"
)

// child is the runtime bookkeeping for one spawned app.
type child struct {
	spec      types.AppSpec
	state     State
	proc      Process
	pid       int
	exitCode  int
	err       error
	startedAt int64
	exitedAt  int64
}

// Result is the per-child outcome of a completed run.
type Result struct {
	Spec     types.AppSpec
	PID      int
	ExitCode int
	// Err carries the spawn error for children that never started, or a
	// wait-level failure. A plain non-zero exit is not an error here.
	Err error
}

// Ok reports whether the child spawned, ran and exited zero.
func (r Result) Ok() bool { return r.Err == nil && r.ExitCode == 0 }
