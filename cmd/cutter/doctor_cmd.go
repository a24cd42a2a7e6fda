package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/doctor"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/output"
	"github.com/raphi011/cutter/internal/ui/progress"
	"github.com/raphi011/cutter/internal/ui/prompt"
)

func newDoctorCmd() *cobra.Command {
	var fix, yes bool

	c := &cobra.Command{
		Use:     "doctor",
		Short:   "Check that hooks can be installed here",
		GroupID: GroupScaffold,
		Args:    cobra.NoArgs,
		Long: `Check the prerequisites of post-gen: git and the hook manager on PATH,
a git work tree, and a .pre-commit-config.yaml.

Exits 1 if any check fails. Use --fix to run 'git init' when the project
is not a repository yet; on a terminal it asks first unless --yes is given.`,
		Example: `  cutter doctor         # report only
  cutter doctor --fix   # also initialize a git repository if missing`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			d := doctor.New(cfg.HookManager, config.WorkDirFromContext(ctx))
			results := d.Run(ctx)

			if fix && needsInit(results) && !yes && interactive() {
				answer, err := prompt.Confirm(os.Stdin, os.Stderr,
					fmt.Sprintf("Initialize a git repository in %s?", d.Dir), true)
				if err != nil {
					return err
				}
				fix = answer.Confirmed
			}

			if fix {
				changed, err := d.Fix(ctx, results)
				if err != nil {
					return err
				}
				if changed {
					l.Println("Initialized git repository")
					results = d.Run(ctx)
				}
			}

			out.Print(doctor.Render(results))
			if doctor.Failed(results) {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	c.Flags().BoolVar(&fix, "fix", false, "Initialize a git repository if missing")
	c.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before fixing")

	return c
}

func needsInit(results []doctor.Result) bool {
	for _, r := range results {
		if r.Name == "git repository" && r.Status == doctor.StatusFail {
			return true
		}
	}
	return false
}

func interactive() bool {
	return progress.IsTerminal(os.Stdin) && progress.IsTerminal(os.Stderr)
}
