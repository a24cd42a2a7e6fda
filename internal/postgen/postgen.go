package postgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/cutter/internal/cmd"
	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/output"
	"github.com/raphi011/cutter/internal/ui/styles"
)

// ErrHookInstallationFailed is wrapped by every failed Outcome.
var ErrHookInstallationFailed = errors.New("hook installation failed")

// Exit codes reported to the scaffolding engine.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// InstallError carries the hook manager's diagnostic.
type InstallError struct {
	Tool     string
	ExitCode int // -1 if the tool never ran
	Err      error
}

func (e *InstallError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%v (exit status %d)", e.Err, e.ExitCode)
	}
	return e.Err.Error()
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrHookInstallationFailed) hold for every InstallError.
func (e *InstallError) Is(target error) bool {
	return target == ErrHookInstallationFailed
}

// Outcome is the result of one installation attempt.
// A nil Err means success.
type Outcome struct {
	Tool string
	Err  error
}

// Succeeded reports whether the hook manager exited 0.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// ExitCode returns the process exit status for this outcome.
func (o Outcome) ExitCode() int {
	if o.Succeeded() {
		return ExitSuccess
	}
	return ExitFailure
}

// Message returns the status line, starting with a success or failure marker.
func (o Outcome) Message() string {
	if o.Succeeded() {
		return fmt.Sprintf("%s %s hooks installed", styles.SuccessMark(), o.Tool)
	}
	return fmt.Sprintf("%s %s install failed: %v", styles.FailureMark(), o.Tool, o.Err)
}

// Installer runs the hook manager in a project directory.
type Installer struct {
	Runner  cmd.Runner
	Manager config.HookManagerConfig
	Dir     string // empty means the process working directory
}

// NewInstaller returns an Installer using os/exec.
func NewInstaller(manager config.HookManagerConfig, dir string) *Installer {
	return &Installer{
		Runner:  cmd.ExecRunner{},
		Manager: manager,
		Dir:     dir,
	}
}

// CommandLine returns the command Run executes, for display.
func (i *Installer) CommandLine() string {
	return strings.Join(append([]string{i.Manager.Command}, i.Manager.Args...), " ")
}

// Run invokes the hook manager once and waits for it.
func (i *Installer) Run(ctx context.Context) Outcome {
	l := log.FromContext(ctx)
	tool := i.Manager.DisplayName()

	l.Debug("installing hook manager", "tool", tool, "dir", i.Dir, "command", i.CommandLine())

	err := i.Runner.Run(ctx, i.Dir, i.Manager.Command, i.Manager.Args...)
	if err == nil {
		return Outcome{Tool: tool}
	}

	installErr := &InstallError{Tool: tool, ExitCode: -1, Err: err}
	notFound := false
	var cmdErr *cmd.Error
	if errors.As(err, &cmdErr) {
		installErr.ExitCode = cmdErr.ExitCode
		notFound = cmdErr.NotFound()
	}
	l.Debug("hook manager failed", "tool", tool, "exit", installErr.ExitCode, "not_found", notFound)

	return Outcome{Tool: tool, Err: installErr}
}

// Report prints the outcome's status line to p.
func Report(p *output.Printer, o Outcome) {
	p.Println(o.Message())
}
