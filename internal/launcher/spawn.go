package launcher

import (
	"strconv"
	"time"
)

// Launch issues exactly one spawn per configured app, in slice order,
// without waiting for any child to become ready. A spawn failure is recorded
// and excluded from the wait set; later spawns still happen.
func (l *Launcher) Launch() error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyLaunched
	}
	l.started = true
	l.mu.Unlock()

	for _, c := range l.children {
		l.spawn(c)
	}

	l.mu.Lock()
	l.launched = true
	l.mu.Unlock()
	return nil
}

func (l *Launcher) spawn(c *child) {
	args := []string{"run", l.cfg.Script, c.spec.Route, "--server.port", strconv.Itoa(c.spec.Port)}
	l.log.Info().
		Str("app", c.spec.Name).
		Str("route", c.spec.Route).
		Int("port", c.spec.Port).
		Msg("spawning child")
	spawnsTotal.WithLabelValues(c.spec.Name).Inc()

	proc, err := l.exec.Start(ChildCommand{
		Path:   l.cfg.Bin,
		Args:   args,
		Dir:    l.cfg.Dir,
		Stdout: l.stdout,
		Stderr: l.stderr,
	})
	now := time.Now().Unix()
	if err != nil {
		l.mu.Lock()
		c.state = StateSpawnFailed
		c.err = err
		c.startedAt = now
		l.mu.Unlock()
		spawnErrorsTotal.WithLabelValues(c.spec.Name).Inc()
		l.log.Error().Err(err).Str("app", c.spec.Name).Msg("spawn failed")
		l.pub.Publish(Event{Name: EventSpawnError, App: c.spec.Name, Fields: map[string]any{"error": err.Error()}})
		return
	}

	l.mu.Lock()
	c.state = StateRunning
	c.proc = proc
	c.pid = proc.PID()
	c.startedAt = now
	l.mu.Unlock()
	childrenRunning.Inc()
	l.log.Info().Str("app", c.spec.Name).Int("pid", c.pid).Msg("child started")
	l.pub.Publish(Event{Name: EventSpawnStart, App: c.spec.Name, Fields: map[string]any{"pid": c.pid, "port": c.spec.Port}})

	l.wg.Add(1)
	go l.reap(c)
}

// reap records the child's exit. One reaper runs per spawned child; spawn
// failures never reach here.
func (l *Launcher) reap(c *child) {
	defer l.wg.Done()
	code, err := c.proc.Wait()

	l.mu.Lock()
	c.state = StateExited
	c.exitCode = code
	c.err = err
	c.exitedAt = time.Now().Unix()
	l.mu.Unlock()
	childrenRunning.Dec()

	outcome := "ok"
	if err != nil || code != 0 {
		outcome = "error"
	}
	childExitsTotal.WithLabelValues(c.spec.Name, outcome).Inc()
	ev := l.log.Info()
	if outcome == "error" {
		ev = l.log.Warn()
	}
	ev.Str("app", c.spec.Name).Int("pid", c.pid).Int("exit_code", code).Err(err).Msg("child exited")
	fields := map[string]any{"pid": c.pid, "exit_code": code}
	if err != nil {
		fields["error"] = err.Error()
	}
	l.pub.Publish(Event{Name: EventChildExit, App: c.spec.Name, Fields: fields})
}
