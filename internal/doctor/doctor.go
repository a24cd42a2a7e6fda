package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/raphi011/cutter/internal/cmd"
	"github.com/raphi011/cutter/internal/config"
	"github.com/raphi011/cutter/internal/git"
	"github.com/raphi011/cutter/internal/log"
	"github.com/raphi011/cutter/internal/ui/static"
	"github.com/raphi011/cutter/internal/ui/styles"
)

// Doctor runs environment checks for one project directory.
type Doctor struct {
	Manager  config.HookManagerConfig
	Dir      string
	Runner   cmd.Runner
	LookPath func(string) (string, error)
}

// New returns a Doctor that uses os/exec.
func New(manager config.HookManagerConfig, dir string) *Doctor {
	return &Doctor{
		Manager:  manager,
		Dir:      dir,
		Runner:   cmd.ExecRunner{},
		LookPath: exec.LookPath,
	}
}

// Run performs every check and returns the results in display order.
// The work tree check is skipped when git itself is missing, and the hook
// check when there is no work tree.
func (d *Doctor) Run(ctx context.Context) []Result {
	l := log.FromContext(ctx)

	gitResult := d.checkGit()
	results := []Result{gitResult, d.checkHookManager()}
	if gitResult.Status == StatusOK {
		workTree := d.checkWorkTree(ctx)
		results = append(results, workTree)
		if workTree.Status == StatusOK {
			results = append(results, d.checkHook())
		}
	}
	results = append(results, d.checkPreCommitConfig())

	for _, r := range results {
		l.Debug("doctor check", "name", r.Name, "status", r.Status)
	}
	return results
}

// Fix initializes a git repository in Dir if the work tree check failed.
// Returns true if anything was changed.
func (d *Doctor) Fix(ctx context.Context, results []Result) (bool, error) {
	for _, r := range results {
		if r.Name != "git repository" || r.Status != StatusFail {
			continue
		}
		if err := git.Init(ctx, d.Runner, d.Dir); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Render formats results as a borderless table followed by hints.
func Render(results []Result) string {
	rows := make([][]string, 0, len(results))
	var hints []string
	for _, r := range results {
		rows = append(rows, []string{statusMark(r.Status), r.Name, r.Detail})
		if r.Hint != "" {
			hint := r.Hint
			if r.URL != "" {
				hint += " (" + styles.Hyperlink(r.URL, r.URL) + ")"
			}
			hints = append(hints, fmt.Sprintf("  %s: %s", r.Name, hint))
		}
	}

	out := static.RenderTable([]string{"", "CHECK", "DETAIL"}, rows)
	for _, h := range hints {
		out += styles.MutedStyle.Render(h) + "\n"
	}
	return out
}

func statusMark(s Status) string {
	switch s {
	case StatusOK:
		return styles.SuccessMark()
	case StatusWarn:
		return styles.WarningMark()
	default:
		return styles.FailureMark()
	}
}
