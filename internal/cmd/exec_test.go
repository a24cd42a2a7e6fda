package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/cutter/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("RunContext(exit 3) = nil, want error")
	}
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("RunContext error = %T, want *Error", err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", cmdErr.ExitCode)
	}
	if cmdErr.NotFound() {
		t.Error("NotFound() = true for a command that ran")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_StdoutFallback(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'only stdout'; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "only stdout" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "only stdout")
	}
}

func TestRunContext_NotFound(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "no_such_command_abc123")
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("RunContext error = %v, want *Error", err)
	}
	if !cmdErr.NotFound() {
		t.Errorf("NotFound() = false, want true (err: %v)", cmdErr.Err)
	}
	if cmdErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", cmdErr.ExitCode)
	}
	if !strings.Contains(err.Error(), "no_such_command_abc123") {
		t.Errorf("error %q should name the missing command", err.Error())
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	err := RunContext(logCtx(), dir, "sh", "-c", "touch marker")
	if err != nil {
		t.Fatalf("RunContext with dir = %v, want nil", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestRunContext_VerboseLogsCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "", "echo", "hi"); err != nil {
		t.Fatalf("RunContext = %v, want nil", err)
	}
	got := buf.String()
	if !strings.Contains(got, "$ echo hi") {
		t.Errorf("verbose log = %q, want to contain %q", got, "$ echo hi")
	}
	if !strings.Contains(got, "hi\n") {
		t.Errorf("verbose log = %q, want command output echoed", got)
	}
}

func TestRunnerFunc(t *testing.T) {
	t.Parallel()
	var gotName string
	var r Runner = RunnerFunc(func(_ context.Context, _, name string, _ ...string) error {
		gotName = name
		return nil
	})
	if err := r.Run(context.Background(), "", "stub"); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if gotName != "stub" {
		t.Errorf("name = %q, want stub", gotName)
	}
}
