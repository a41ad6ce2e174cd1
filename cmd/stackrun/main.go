package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/common/fsutil"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/config"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/httpapi"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/launcher"
)

func main() {
	cfgPath := flag.String("config", "", "Optional stack config file (.yaml/.yml/.json/.toml)")
	bin := flag.String("bin", "", "Framework executable (default streamlit)")
	script := flag.String("script", "", "App entrypoint passed to run (default app_fhir.py)")
	dir := flag.String("dir", "", "Working directory for the children (default current)")
	statusAddr := flag.String("status-addr", "", "Serve /status, /healthz, /readyz, /metrics on this address (default off)")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "Log format: console or json")
	flag.Parse()

	logger := newLogger(*logLevel, *logFormat)

	stack := config.Default().Stack
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		stack = mergeStack(stack, loaded.Stack)
	}
	if *bin != "" {
		stack.Bin = *bin
	}
	if *script != "" {
		stack.Script = *script
	}
	if *dir != "" {
		stack.Dir = *dir
	}
	if *statusAddr != "" {
		stack.StatusAddr = *statusAddr
	}
	if stack.Dir != "" {
		expanded, err := fsutil.ExpandHome(stack.Dir)
		if err != nil {
			log.Fatalf("bad -dir: %v", err)
		}
		stack.Dir = expanded
		if !fsutil.PathExists(stack.Dir) {
			logger.Warn().Str("dir", stack.Dir).Msg("working directory does not exist; spawns will fail")
		}
	}

	l := launcher.New(launcher.Config{
		Bin:    stack.Bin,
		Script: stack.Script,
		Dir:    stack.Dir,
		Apps:   stack.Apps,
		Logger: &logger,
	})

	// The status surface is read-only and optional; the stock invocation
	// never opens a listener.
	if stack.StatusAddr != "" {
		httpapi.SetLogger(logger)
		srv := &http.Server{Addr: stack.StatusAddr, Handler: httpapi.NewStackMux(l)}
		go func() {
			logger.Info().Str("addr", stack.StatusAddr).Msg("status server listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("status server error")
			}
		}()
		// Close, not Shutdown: once the children are gone the process must
		// exit without waiting on idle status connections.
		defer srv.Close()
	}

	results, err := l.Run()
	if err != nil {
		log.Fatalf("launch error: %v", err)
	}
	for _, res := range results {
		ev := logger.Info()
		if !res.Ok() {
			ev = logger.Warn()
		}
		ev.Str("app", res.Spec.Name).
			Int("pid", res.PID).
			Int("exit_code", res.ExitCode).
			Err(res.Err).
			Msg("child result")
	}
	// Child failures are reported above but never change the exit code.
	logger.Info().Int("children", len(results)).Msg("stack finished")
}

// mergeStack overlays the non-zero fields of a loaded file section onto the
// stock defaults.
func mergeStack(base, loaded config.StackConfig) config.StackConfig {
	if loaded.Bin != "" {
		base.Bin = loaded.Bin
	}
	if loaded.Script != "" {
		base.Script = loaded.Script
	}
	if loaded.Dir != "" {
		base.Dir = loaded.Dir
	}
	if len(loaded.Apps) > 0 {
		base.Apps = loaded.Apps
	}
	if loaded.StatusAddr != "" {
		base.StatusAddr = loaded.StatusAddr
	}
	return base
}

func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
