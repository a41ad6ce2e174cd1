package launcher

import (
	"errors"
	"testing"
)

func TestStatus_LifecycleProgression(t *testing.T) {
	fx := newFakeExecutor()
	gate := make(chan struct{})
	for _, route := range []string{"/sidebar", "/summary", "/chat", "/fhir"} {
		fx.procs[route] = &fakeProc{gate: gate}
	}
	l := New(Config{Bin: "streamlit", Script: "app_fhir.py", Apps: fourApps(), Executor: fx})

	st := l.Status()
	if st.State != "spawning" || l.Launched() {
		t.Fatalf("fresh launcher should be spawning: %+v", st)
	}
	if len(st.Children) != 4 {
		t.Fatalf("expected 4 children in status, got %d", len(st.Children))
	}
	for _, c := range st.Children {
		if c.State != string(StatePending) {
			t.Fatalf("child %s should be pending: %+v", c.Name, c)
		}
	}

	if err := l.Launch(); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	st = l.Status()
	if st.State != "waiting" || !l.Launched() {
		t.Fatalf("launched stack should be waiting: %+v", st)
	}
	if st.Running != 4 {
		t.Fatalf("expected 4 running children, got %+v", st)
	}
	for _, c := range st.Children {
		if c.PID <= 0 {
			t.Fatalf("running child %s missing pid: %+v", c.Name, c)
		}
	}

	close(gate)
	l.Wait()
	st = l.Status()
	if st.State != "done" || st.Exited != 4 || st.Running != 0 {
		t.Fatalf("finished stack status wrong: %+v", st)
	}
}

func TestStatus_RecordsSpawnError(t *testing.T) {
	fx := newFakeExecutor()
	fx.failFor["/chat"] = errors.New("permission denied")
	l := New(Config{Bin: "streamlit", Script: "app_fhir.py", Apps: fourApps(), Executor: fx})
	if _, err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	st := l.Status()
	var found bool
	for _, c := range st.Children {
		if c.Name != "chat" {
			continue
		}
		found = true
		if c.State != string(StateSpawnFailed) || c.Error == "" {
			t.Fatalf("chat child should carry spawn failure: %+v", c)
		}
	}
	if !found {
		t.Fatalf("chat child missing from status: %+v", st)
	}
	if st.RunID == "" {
		t.Fatal("status missing run id")
	}
}
