package launcher

import (
	"sync"
	"time"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// fourApps mirrors the default launch set.
func fourApps() []types.AppSpec {
	return []types.AppSpec{
		{Name: "sidebar", Route: "/sidebar", Port: 8510},
		{Name: "summary", Route: "/summary", Port: 8511},
		{Name: "chat", Route: "/chat", Port: 8512},
		{Name: "fhir", Route: "/fhir", Port: 8513},
	}
}

// fakeProc is a scripted Process. If gate is set, Wait blocks until the
// channel closes; otherwise it sleeps delay and returns code/err.
type fakeProc struct {
	pid   int
	delay time.Duration
	code  int
	err   error
	gate  chan struct{}
}

func (p *fakeProc) PID() int { return p.pid }

func (p *fakeProc) Wait() (int, error) {
	if p.gate != nil {
		<-p.gate
	} else if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.code, p.err
}

// fakeExecutor records every Start call and hands out scripted processes
// keyed by the route argument.
type fakeExecutor struct {
	mu      sync.Mutex
	starts  []ChildCommand
	procs   map[string]*fakeProc
	failFor map[string]error
	nextPID int
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		procs:   map[string]*fakeProc{},
		failFor: map[string]error{},
		nextPID: 4000,
	}
}

func (f *fakeExecutor) Start(cmd ChildCommand) (Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, cmd)
	route := ""
	if len(cmd.Args) >= 3 {
		route = cmd.Args[2]
	}
	if err, ok := f.failFor[route]; ok {
		return nil, err
	}
	p, ok := f.procs[route]
	if !ok {
		p = &fakeProc{}
		f.procs[route] = p
	}
	f.nextPID++
	p.pid = f.nextPID
	return p, nil
}

func (f *fakeExecutor) Starts() []ChildCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ChildCommand, len(f.starts))
	copy(out, f.starts)
	return out
}
