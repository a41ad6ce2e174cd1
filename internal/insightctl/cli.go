package insightctl

import (
	"fmt"
	"os"
	"time"
)

// Config carries the persistent CLI settings.
type Config struct {
	// Server is the insightd base URL.
	Server string
	// Timeout bounds one request end to end. Summaries run several model
	// calls, so the default is generous.
	Timeout time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Server:  envStr("INSIGHTCTL_SERVER", "http://127.0.0.1:8000"),
		Timeout: 120 * time.Second,
	}
}

func (c *Config) client() *Client { return NewClient(c.Server, c.Timeout) }

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	root := buildRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/insightctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
