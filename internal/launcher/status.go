package launcher

import (
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Status builds a read-only projection of the run for the status API.
func (l *Launcher) Status() types.StackStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()

	st := types.StackStatus{
		RunID:     l.runID,
		State:     l.overallState(),
		StartedAt: l.startedAt,
	}
	st.Children = make([]types.ChildStatus, 0, len(l.children))
	for _, c := range l.children {
		cs := types.ChildStatus{
			Name:      c.spec.Name,
			Route:     c.spec.Route,
			Port:      c.spec.Port,
			PID:       c.pid,
			State:     string(c.state),
			ExitCode:  c.exitCode,
			StartedAt: c.startedAt,
			ExitedAt:  c.exitedAt,
		}
		if c.err != nil {
			cs.Error = c.err.Error()
		}
		switch c.state {
		case StateRunning:
			st.Running++
		case StateExited:
			st.Exited++
		case StateSpawnFailed:
			st.SpawnErrors++
		}
		st.Children = append(st.Children, cs)
	}
	return st
}

// Launched reports whether every spawn has been issued; the status server's
// readiness probe keys off this.
func (l *Launcher) Launched() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.launched
}

// overallState is called with l.mu held.
func (l *Launcher) overallState() string {
	switch {
	case l.done:
		return "done"
	case l.launched:
		return "waiting"
	default:
		return "spawning"
	}
}
