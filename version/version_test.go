package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/rfcurl/cliout"
	"github.com/jongio/rfcurl/testutil"
)

func TestNew_Defaults(t *testing.T) {
	info := New("rfcurl")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected GoVersion %q, got %q", runtime.Version(), info.GoVersion)
	}
}

func TestNew_UsesBuildVariables(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.4.0"
	if got := New("rfcurl").Version; got != "1.4.0" {
		t.Errorf("expected Version '1.4.0', got %q", got)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "rfcurl",
	}
	got := info.String()
	expected := "rfcurl version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewCommand(New("rfcurl"))
	cmd.SetArgs(append([]string{}, args...))
	return testutil.CaptureOutput(t, func() error {
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return nil
	})
}

func TestNewCommand_HumanReadable(t *testing.T) {
	cliout.NoColor()
	output := run(t)
	for _, want := range []string{"rfcurl Version", "Version", "Build Date", "Git Commit", "Go Version"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestNewCommand_JSON(t *testing.T) {
	if err := cliout.SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cliout.SetFormat("default") })

	output := run(t)
	var parsed Info
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if parsed.Name != "rfcurl" {
		t.Errorf("expected name 'rfcurl', got %q", parsed.Name)
	}
	if parsed.Version != "0.0.0-dev" {
		t.Errorf("expected version '0.0.0-dev', got %q", parsed.Version)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	output := run(t, "--quiet")
	trimmed := strings.TrimSpace(output)
	if trimmed != "0.0.0-dev" {
		t.Errorf("expected '0.0.0-dev', got %q", trimmed)
	}
}
