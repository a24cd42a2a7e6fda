package postgen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/cutter/internal/cmd"
	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/output"
)

// fakeTool writes an executable shell script named name into a fresh
// directory and returns that directory.
func fakeTool(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func report(o Outcome) string {
	var buf bytes.Buffer
	Report(output.New(&buf), o)
	return buf.String()
}

func TestInstaller_RunsConfiguredCommand(t *testing.T) {
	t.Parallel()

	var gotDir, gotName string
	var gotArgs []string
	inst := &Installer{
		Runner: cmd.RunnerFunc(func(_ context.Context, dir, name string, args ...string) error {
			gotDir, gotName, gotArgs = dir, name, args
			return nil
		}),
		Manager: config.Default().HookManager,
		Dir:     "/projects/demo",
	}

	outcome := inst.Run(context.Background())
	if !outcome.Succeeded() {
		t.Fatalf("Run() = %v, want success", outcome.Err)
	}
	if gotDir != "/projects/demo" || gotName != "pre-commit" {
		t.Errorf("ran %q in %q, want pre-commit in /projects/demo", gotName, gotDir)
	}
	if !slices.Equal(gotArgs, []string{"install", "--install-hooks"}) {
		t.Errorf("args = %v, want [install --install-hooks]", gotArgs)
	}
}

func TestInstaller_StubOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runErr     error
		wantExit   int
		wantMarker string
		wantText   string
	}{
		{
			name:       "success",
			wantExit:   0,
			wantMarker: "✓",
			wantText:   "pre-commit hooks installed",
		},
		{
			name:       "tool exits non-zero",
			runErr:     &cmd.Error{Name: "pre-commit", ExitCode: 1, Output: "permission denied"},
			wantExit:   1,
			wantMarker: "✗",
			wantText:   "permission denied (exit status 1)",
		},
		{
			name:       "tool cannot start",
			runErr:     errors.New("fork/exec: resource temporarily unavailable"),
			wantExit:   1,
			wantMarker: "✗",
			wantText:   "resource temporarily unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inst := &Installer{
				Runner: cmd.RunnerFunc(func(context.Context, string, string, ...string) error {
					return tt.runErr
				}),
				Manager: config.Default().HookManager,
			}

			outcome := inst.Run(context.Background())
			if got := outcome.ExitCode(); got != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantExit)
			}

			out := report(outcome)
			if !strings.HasPrefix(out, tt.wantMarker+" ") {
				t.Errorf("output = %q, want marker %q", out, tt.wantMarker)
			}
			if !strings.Contains(out, tt.wantText) {
				t.Errorf("output = %q, want to contain %q", out, tt.wantText)
			}
			if strings.Count(out, "\n") != 1 {
				t.Errorf("output = %q, want exactly one line", out)
			}
		})
	}
}

func TestOutcome_MarkersAreExclusive(t *testing.T) {
	t.Parallel()

	ok := report(Outcome{Tool: "pre-commit"})
	failed := report(Outcome{Tool: "pre-commit", Err: &InstallError{Tool: "pre-commit", Err: errors.New("boom")}})

	if strings.Contains(ok, "✗") || strings.Contains(ok, "failed") {
		t.Errorf("success output %q contains failure text", ok)
	}
	if strings.Contains(failed, "✓") || strings.Contains(failed, "installed") {
		t.Errorf("failure output %q contains success text", failed)
	}
}

func TestOutcome_WrapsSentinel(t *testing.T) {
	t.Parallel()

	inst := &Installer{
		Runner: cmd.RunnerFunc(func(context.Context, string, string, ...string) error {
			return context.Canceled
		}),
		Manager: config.Default().HookManager,
	}

	outcome := inst.Run(context.Background())
	if !errors.Is(outcome.Err, ErrHookInstallationFailed) {
		t.Errorf("errors.Is(%v, ErrHookInstallationFailed) = false", outcome.Err)
	}
	if !errors.Is(outcome.Err, context.Canceled) {
		t.Errorf("outcome should keep the underlying cause, got %v", outcome.Err)
	}
	var ie *InstallError
	if !errors.As(outcome.Err, &ie) || ie.ExitCode != -1 {
		t.Errorf("InstallError = %+v, want ExitCode -1", ie)
	}
}

func TestInstaller_DisplayName(t *testing.T) {
	t.Parallel()

	inst := &Installer{
		Runner:  cmd.RunnerFunc(func(context.Context, string, string, ...string) error { return nil }),
		Manager: config.HookManagerConfig{Name: "prek", Command: "/opt/bin/prek", Args: []string{"install"}},
	}
	if got := inst.CommandLine(); got != "/opt/bin/prek install" {
		t.Errorf("CommandLine() = %q", got)
	}
	if got := report(inst.Run(context.Background())); !strings.Contains(got, "prek hooks installed") {
		t.Errorf("output = %q, want display name", got)
	}
}

// The scenarios below run a real process through os/exec with a stand-in
// hook manager on PATH.

func TestScenario_ToolSucceeds(t *testing.T) {
	t.Setenv("PATH", fakeTool(t, "pre-commit", "exit 0"))

	outcome := NewInstaller(config.Default().HookManager, t.TempDir()).Run(context.Background())

	if outcome.ExitCode() != 0 {
		t.Fatalf("ExitCode() = %d, want 0 (err: %v)", outcome.ExitCode(), outcome.Err)
	}
	if out := report(outcome); !strings.HasPrefix(out, "✓ ") {
		t.Errorf("output = %q, want success marker", out)
	}
}

func TestScenario_ToolFails(t *testing.T) {
	t.Setenv("PATH", fakeTool(t, "pre-commit", `echo "permission denied" >&2; exit 1`))

	outcome := NewInstaller(config.Default().HookManager, t.TempDir()).Run(context.Background())

	if outcome.ExitCode() != 1 {
		t.Fatalf("ExitCode() = %d, want 1", outcome.ExitCode())
	}
	out := report(outcome)
	if !strings.HasPrefix(out, "✗ ") {
		t.Errorf("output = %q, want failure marker", out)
	}
	if !strings.Contains(out, "permission denied") {
		t.Errorf("output = %q, want tool diagnostic", out)
	}
}

func TestScenario_ToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	var logBuf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&logBuf, true, false))

	outcome := NewInstaller(config.Default().HookManager, t.TempDir()).Run(ctx)

	if outcome.ExitCode() != 1 {
		t.Fatalf("ExitCode() = %d, want 1", outcome.ExitCode())
	}
	if !errors.Is(outcome.Err, ErrHookInstallationFailed) {
		t.Errorf("missing tool should be a HookInstallationFailed, got %v", outcome.Err)
	}
	out := report(outcome)
	if !strings.HasPrefix(out, "✗ ") || !strings.Contains(out, "pre-commit") {
		t.Errorf("output = %q, want failure marker naming the tool", out)
	}
	if !strings.Contains(logBuf.String(), "not_found=true") {
		t.Errorf("debug log = %q, want not_found=true", logBuf.String())
	}
}

func TestScenario_RunsInProjectDir(t *testing.T) {
	t.Setenv("PATH", fakeTool(t, "pre-commit", `touch installed-here`)+string(os.PathListSeparator)+os.Getenv("PATH"))
	project := t.TempDir()

	outcome := NewInstaller(config.Default().HookManager, project).Run(context.Background())
	if !outcome.Succeeded() {
		t.Fatalf("Run() = %v", outcome.Err)
	}
	if _, err := os.Stat(filepath.Join(project, "installed-here")); err != nil {
		t.Errorf("hook manager did not run in the project dir: %v", err)
	}
}
