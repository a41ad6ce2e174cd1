package launcher

// Wait blocks until every spawned child has exited, then returns per-child
// results in spawn order. Children whose spawn failed are included with
// their spawn error. There is no timeout, no partial wait and no
// cancellation path; delivery of an interrupt to the children is left to
// the operating system.
func (l *Launcher) Wait() []Result {
	l.wg.Wait()

	l.mu.Lock()
	l.done = true
	l.mu.Unlock()
	l.log.Info().Msg("all children exited")
	return l.results()
}

// Run spawns every configured child and waits for all of them.
func (l *Launcher) Run() ([]Result, error) {
	if err := l.Launch(); err != nil {
		return nil, err
	}
	return l.Wait(), nil
}

func (l *Launcher) results() []Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Result, 0, len(l.children))
	for _, c := range l.children {
		out = append(out, Result{
			Spec:     c.spec,
			PID:      c.pid,
			ExitCode: c.exitCode,
			Err:      c.err,
		})
	}
	return out
}
