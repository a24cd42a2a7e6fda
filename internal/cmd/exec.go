package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/cutter/internal/log"
)

// Runner runs an external command in dir and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	return RunContext(ctx, dir, name, args...)
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func(ctx context.Context, dir, name string, args ...string) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, dir, name string, args ...string) error {
	return f(ctx, dir, name, args...)
}

// Error describes a command that could not be started or exited non-zero.
type Error struct {
	Name     string
	ExitCode int    // -1 if the process never ran
	Output   string // trimmed stderr, or stdout when stderr was empty
	Err      error
}

// Error returns the tool's own output when it printed any.
func (e *Error) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports whether the command could not be resolved on PATH.
func (e *Error) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound)
}

// RunContext executes name in dir and returns a *Error if it fails.
// Context cancellation is returned as ctx.Err() unchanged.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = &stdout
	c.Stderr = &stderr
	if l.IsVerbose() {
		c.Stdout = io.MultiWriter(&stdout, l.Writer())
		c.Stderr = io.MultiWriter(&stderr, l.Writer())
	}

	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	cmdErr := &Error{Name: name, ExitCode: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}
	cmdErr.Output = strings.TrimSpace(stderr.String())
	if cmdErr.Output == "" {
		cmdErr.Output = strings.TrimSpace(stdout.String())
	}
	return cmdErr
}
