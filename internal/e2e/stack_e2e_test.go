package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/httpapi"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/launcher"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// TestE2E_StackStatusSurface runs the supervisor against /bin/echo children
// and reads the whole lifecycle back through the status server.
func TestE2E_StackStatusSurface(t *testing.T) {
	if _, err := os.Stat("/bin/echo"); err != nil {
		t.Skip("needs /bin/echo")
	}

	l := launcher.New(launcher.Config{
		Bin:    "/bin/echo",
		Script: "app_fhir.py",
		Apps: []types.AppSpec{
			{Name: "sidebar", Route: "/sidebar", Port: 8510},
			{Name: "summary", Route: "/summary", Port: 8511},
			{Name: "chat", Route: "/chat", Port: 8512},
			{Name: "fhir", Route: "/fhir", Port: 8513},
		},
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	srv := httptest.NewServer(httpapi.NewStackMux(l))
	defer srv.Close()

	if code := getJSON(t, srv.URL+"/readyz", nil); code != http.StatusServiceUnavailable {
		t.Fatalf("readyz before launch status=%d", code)
	}

	start := time.Now()
	if err := l.Launch(); err != nil {
		t.Fatalf("launch: %v", err)
	}
	results := l.Wait()
	elapsed := time.Since(start)

	if code := getJSON(t, srv.URL+"/readyz", nil); code != http.StatusOK {
		t.Fatalf("readyz after launch status=%d", code)
	}

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	defer resp.Body.Close()
	var st types.StackStatus
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.State != "done" || st.Exited != 4 || st.SpawnErrors != 0 {
		t.Fatalf("status=%+v", st)
	}
	for i, c := range st.Children {
		if c.PID == 0 || c.State != "exited" || c.ExitCode != 0 {
			t.Fatalf("child %d = %+v", i, c)
		}
	}
	if st.RunID == "" || st.RunID != l.RunID() {
		t.Fatalf("run id mismatch: %q vs %q", st.RunID, l.RunID())
	}

	if len(results) != 4 {
		t.Fatalf("results=%d", len(results))
	}
	for _, r := range results {
		if !r.Ok() {
			t.Fatalf("child failed: %+v", r)
		}
	}
	// Instant-exit children must not stall the supervisor.
	if elapsed > time.Second {
		t.Fatalf("run took %v", elapsed)
	}
}
