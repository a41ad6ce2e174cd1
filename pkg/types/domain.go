package types

// AppSpec identifies one Streamlit child of the app stack. The four stock
// instances differ only in route and port.
type AppSpec struct {
	// Short name used in logs and status output.
	Name string `json:"name" yaml:"name" toml:"name" example:"sidebar"`
	// Route passed to the app as its positional argument.
	Route string `json:"route" yaml:"route" toml:"route" example:"/sidebar"`
	// TCP port bound by the child via --server.port.
	Port int `json:"port" yaml:"port" toml:"port" example:"8510"`
}

// ChildStatus summarizes one child process for /status.
type ChildStatus struct {
	// Spec this child was spawned from.
	// example: sidebar
	Name string `json:"name" example:"sidebar"`
	// example: /sidebar
	Route string `json:"route" example:"/sidebar"`
	// example: 8510
	Port int `json:"port" example:"8510"`
	// OS process id; zero when the spawn failed.
	// example: 12345
	PID int `json:"pid,omitempty" example:"12345"`
	// Lifecycle state: pending, running, exited or spawn_failed.
	// example: running
	State string `json:"state" example:"running"`
	// Exit code once the child has exited.
	ExitCode int `json:"exit_code,omitempty"`
	// Spawn or wait error, when any.
	Error string `json:"error,omitempty"`
	// Unix seconds of the spawn attempt.
	// example: 1700000000
	StartedAt int64 `json:"started_at_unix,omitempty" example:"1700000000"`
	// Unix seconds of the exit, zero while running.
	ExitedAt int64 `json:"exited_at_unix,omitempty"`
}

// StackStatus is returned by the supervisor's /status endpoint.
type StackStatus struct {
	// Random id of this supervisor run, attached to every log line.
	RunID string `json:"run_id"`
	// Overall state: spawning, waiting or done.
	// example: waiting
	State string `json:"state" example:"waiting"`
	// Per-child states in spawn order.
	Children []ChildStatus `json:"children"`
	// Children currently running.
	// example: 4
	Running int `json:"running" example:"4"`
	// Children that have exited.
	Exited int `json:"exited"`
	// Spawns that failed outright.
	SpawnErrors int `json:"spawn_errors"`
	// Unix seconds the supervisor started.
	// example: 1700000000
	StartedAt int64 `json:"started_at_unix" example:"1700000000"`
}
