package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Mimics the subset of the streamlit CLI the launcher drives:
//
//	streamlit run <script> <route> --server.port <port>
//
// Behavior is steered through the environment so tests stay declarative:
//
//	FAKE_STREAMLIT_DIR       write "<port>.args" with the raw argv there
//	FAKE_STREAMLIT_SLEEP_MS  sleep before exiting
//	FAKE_STREAMLIT_EXIT      exit code (default 0)
func main() {
	args := os.Args[1:]
	var port string
	var pos []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--server.port" && i+1 < len(args) {
			port = args[i+1]
			i++
			continue
		}
		pos = append(pos, args[i])
	}
	if len(pos) < 3 || pos[0] != "run" || port == "" {
		fmt.Fprintln(os.Stderr, "usage: fake_streamlit run <script> <route> --server.port <port>")
		os.Exit(2)
	}

	if dir := os.Getenv("FAKE_STREAMLIT_DIR"); dir != "" {
		line := strings.Join(args, " ") + "\n"
		if err := os.WriteFile(filepath.Join(dir, port+".args"), []byte(line), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "write args:", err)
			os.Exit(2)
		}
	}
	if ms := os.Getenv("FAKE_STREAMLIT_SLEEP_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			time.Sleep(time.Duration(n) * time.Millisecond)
		}
	}
	if code := os.Getenv("FAKE_STREAMLIT_EXIT"); code != "" {
		if n, err := strconv.Atoi(code); err == nil {
			os.Exit(n)
		}
	}
}
