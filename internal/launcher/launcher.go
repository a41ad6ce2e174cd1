package launcher

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Config encapsulates all tunables for Launcher construction.
type Config struct {
	// Bin is the framework executable, typically "streamlit".
	Bin string
	// Script is the app entrypoint given to `<bin> run`.
	Script string
	// Dir is the working directory for the children; empty keeps the
	// supervisor's own.
	Dir string
	// Apps are spawned in slice order.
	Apps []types.AppSpec
	// Executor defaults to the os/exec implementation.
	Executor Executor
	// Publisher defaults to a no-op.
	Publisher EventPublisher
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// Stdout and Stderr are handed to every child unchanged; they default
	// to the supervisor's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher spawns the configured children once and joins on their exits.
type Launcher struct {
	cfg    Config
	runID  string
	log    zerolog.Logger
	pub    EventPublisher
	exec   Executor
	stdout io.Writer
	stderr io.Writer

	mu        sync.RWMutex
	children  []*child
	started   bool
	launched  bool
	done      bool
	startedAt int64

	wg sync.WaitGroup
}

// New constructs a Launcher from Config, applying defaults for the optional
// seams. The child list is fixed at construction.
func New(cfg Config) *Launcher {
	l := &Launcher{
		cfg:       cfg,
		runID:     uuid.NewString(),
		pub:       cfg.Publisher,
		exec:      cfg.Executor,
		stdout:    cfg.Stdout,
		stderr:    cfg.Stderr,
		startedAt: time.Now().Unix(),
	}
	if l.pub == nil {
		l.pub = noopPublisher{}
	}
	if l.exec == nil {
		l.exec = NewExecExecutor()
	}
	if l.stdout == nil {
		l.stdout = os.Stdout
	}
	if l.stderr == nil {
		l.stderr = os.Stderr
	}
	if cfg.Logger != nil {
		l.log = cfg.Logger.With().Str("run_id", l.runID).Logger()
	} else {
		l.log = zerolog.Nop()
	}
	l.children = make([]*child, 0, len(cfg.Apps))
	for _, spec := range cfg.Apps {
		l.children = append(l.children, &child{spec: spec, state: StatePending})
	}
	return l
}

// RunID identifies this supervisor run in logs and status output.
func (l *Launcher) RunID() string { return l.runID }
