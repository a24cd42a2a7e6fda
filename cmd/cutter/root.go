package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/output"
	"github.com/raphi011/cutter/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupScaffold = "scaffold"
	GroupTemplate = "template"
	GroupUtility  = "utility"
)

// app holds global flags and the process streams shared by all commands.
type app struct {
	verbose bool
	quiet   bool
	dir     string

	stdout io.Writer
	stderr io.Writer

	isTerminal func(io.Writer) bool
}

// exitError ends the process with code without printing anything more;
// the command has already reported the problem.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the CLI and exits the process with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(&app{stdout: stdout, stderr: stderr, isTerminal: isTerminalWriter})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintln(stderr, err)
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Run 'cutter -h' for help")
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cutter",
		Short: "Post-generation companion for the project template",
		Long: `cutter runs inside a project that was just rendered from the template.

'cutter post-gen' installs the commit-hook manager (pre-commit by default)
and exits non-zero if that fails, so the scaffolding engine reports the
generation as failed instead of handing over a project without hooks.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			ctx, err := a.setup(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all log output")
	root.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "Run as if started in `path`")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupScaffold, Title: "Scaffolding Commands:"},
		&cobra.Group{ID: GroupTemplate, Title: "Template Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	root.AddCommand(newPostGenCmd(a))
	root.AddCommand(newDoctorCmd())

	root.AddCommand(newHelloCmd())
	root.AddCommand(newItemCmd())
	root.AddCommand(newDemoCmd())

	root.AddCommand(newConfigCmd())

	return root
}

// setup resolves the project directory, loads config and attaches the
// logger, printer and config to ctx.
func (a *app) setup(ctx context.Context) (context.Context, error) {
	l := log.New(a.stderr, a.verbose, a.quiet)

	workDir, err := resolveDir(a.dir)
	if err != nil {
		return ctx, err
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	l.Debug("loaded config", "dir", workDir, "hook_manager", cfg.HookManager.Command)

	ctx = log.WithLogger(ctx, l)
	ctx = output.WithPrinter(ctx, a.stdout)
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, nil
}

// resolveDir returns dir as an absolute directory, defaulting to the
// process working directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot use -C %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("cannot use -C %s: not a directory", dir)
	}
	return abs, nil
}
