package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/cutter/internal/cmd"
	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/output"
	"github.com/raphi011/cutter/internal/postgen"
	"github.com/raphi011/cutter/internal/ui/progress"
)

func newPostGenCmd(a *app) *cobra.Command {
	var dryRun bool

	c := &cobra.Command{
		Use:     "post-gen",
		Short:   "Install commit hooks into a freshly generated project",
		Aliases: []string{"install-hooks"},
		GroupID: GroupScaffold,
		Args:    cobra.NoArgs,
		Long: `Install the commit-hook manager into the current project.

Runs the configured hook manager once (default: pre-commit install --install-hooks)
and waits for it. Prints one status line. Exits 0 when the hooks were
installed and 1 otherwise, including when the tool is not on PATH.`,
		Example: `  cutter post-gen                 # install hooks in the current directory
  cutter post-gen -C ./my-project  # install hooks in another directory
  cutter post-gen --dry-run        # print the command without running it`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			inst := postgen.NewInstaller(cfg.HookManager, config.WorkDirFromContext(ctx))

			if dryRun {
				out.Printf("[dry-run] %s\n", inst.CommandLine())
				return nil
			}

			if cfg.PostGen.Spinner {
				inst.Runner = a.withSpinner(ctx, inst.Runner,
					fmt.Sprintf("Installing %s hooks...", cfg.HookManager.DisplayName()))
			}

			outcome := inst.Run(ctx)
			postgen.Report(out, outcome)
			if !outcome.Succeeded() {
				return &exitError{code: outcome.ExitCode()}
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print the command without executing")

	return c
}

// withSpinner shows a spinner on stderr while r runs, with the elapsed
// time once the tool has taken longer than a second. It leaves r alone
// unless stderr is a terminal and neither verbose nor quiet is set, since
// verbose mode streams the tool's own output there.
func (a *app) withSpinner(ctx context.Context, r cmd.Runner, message string) cmd.Runner {
	l := log.FromContext(ctx)
	if !a.isTerminal(a.stderr) || l.IsVerbose() || l.IsQuiet() {
		return r
	}

	return cmd.RunnerFunc(func(ctx context.Context, dir, name string, args ...string) error {
		sp := progress.NewSpinner(a.stderr, message)
		sp.Start()
		defer sp.Stop()

		stop := make(chan struct{})
		defer close(stop)
		go func() {
			start := time.Now()
			tick := time.NewTicker(time.Second)
			defer tick.Stop()
			for {
				select {
				case <-stop:
					return
				case <-tick.C:
					sp.UpdateMessage(fmt.Sprintf("%s (%s)", message, time.Since(start).Round(time.Second)))
				}
			}
		}()

		return r.Run(ctx, dir, name, args...)
	})
}

// isTerminalWriter reports whether w is an interactive terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && progress.IsTerminal(f)
}
