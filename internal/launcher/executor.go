package launcher

import (
	"errors"
	"io"
	"os/exec"
)

// ChildCommand describes one process to start. Args excludes the executable
// name; Dir may be empty for the caller's working directory.
type ChildCommand struct {
	Path   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Process is a started child. Wait blocks until it exits and returns the
// exit code; a non-zero code is not reported as an error.
type Process interface {
	PID() int
	Wait() (int, error)
}

// Executor starts child processes. The default implementation uses os/exec;
// tests substitute fakes with scripted delays and exit codes.
type Executor interface {
	Start(cmd ChildCommand) (Process, error)
}

// execExecutor is the os/exec-backed Executor used outside of tests.
type execExecutor struct{}

// NewExecExecutor returns the default os/exec Executor.
func NewExecExecutor() Executor { return execExecutor{} }

func (execExecutor) Start(c ChildCommand) (Process, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
