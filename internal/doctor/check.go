package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/raphi011/cutter/internal/git"
)

// PreCommitConfigFile is the file pre-commit reads hook definitions from.
const PreCommitConfigFile = ".pre-commit-config.yaml"

const (
	gitURL             = "https://git-scm.com"
	preCommitURL       = "https://pre-commit.com/#install"
	preCommitConfigURL = "https://pre-commit.com/#adding-pre-commit-plugins-to-your-project"
)

func (d *Doctor) checkTool(name, label, url string) Result {
	path, err := d.LookPath(name)
	if err != nil {
		return Result{
			Name:   label,
			Status: StatusFail,
			Detail: fmt.Sprintf("%s not found on PATH", name),
			Hint:   fmt.Sprintf("install %s", name),
			URL:    url,
		}
	}
	return Result{Name: label, Status: StatusOK, Detail: path}
}

func (d *Doctor) checkGit() Result {
	path, err := git.CheckGit(d.LookPath)
	if err != nil {
		return Result{
			Name:   "git",
			Status: StatusFail,
			Detail: err.Error(),
			Hint:   "install git",
			URL:    gitURL,
		}
	}
	return Result{Name: "git", Status: StatusOK, Detail: path}
}

func (d *Doctor) checkHookManager() Result {
	url := ""
	if d.Manager.Command == "pre-commit" {
		url = preCommitURL
	}
	return d.checkTool(d.Manager.Command, "hook manager", url)
}

func (d *Doctor) checkWorkTree(ctx context.Context) Result {
	if !git.IsInsideWorkTree(ctx, d.Runner, d.Dir) {
		return Result{
			Name:   "git repository",
			Status: StatusFail,
			Detail: "not a git work tree",
			Hint:   "run `git init` (or `cutter doctor --fix`)",
		}
	}
	return Result{Name: "git repository", Status: StatusOK, Detail: d.Dir}
}

// checkHook looks for the git hook script the hook manager writes on
// install. Only pre-commit has a known hook name.
func (d *Doctor) checkHook() Result {
	if git.HookInstalled(d.Dir, "pre-commit") {
		return Result{Name: "commit hook", Status: StatusOK, Detail: ".git/hooks/pre-commit"}
	}
	return Result{
		Name:   "commit hook",
		Status: StatusWarn,
		Detail: "not installed",
		Hint:   "run `cutter post-gen`",
	}
}

// preCommitConfig is the part of .pre-commit-config.yaml that
// `pre-commit install --install-hooks` needs.
type preCommitConfig struct {
	Repos *[]struct {
		Repo  string `yaml:"repo"`
		Hooks []struct {
			ID string `yaml:"id"`
		} `yaml:"hooks"`
	} `yaml:"repos"`
}

func (d *Doctor) checkPreCommitConfig() Result {
	data, err := os.ReadFile(filepath.Join(d.Dir, PreCommitConfigFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Result{
			Name:   "hook config",
			Status: StatusWarn,
			Detail: PreCommitConfigFile + " missing",
			Hint:   "no hooks will be installed beyond the git shim",
		}
	case err != nil:
		return Result{Name: "hook config", Status: StatusFail, Detail: err.Error()}
	}

	var cfg preCommitConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Result{
			Name:   "hook config",
			Status: StatusFail,
			Detail: "invalid YAML: " + err.Error(),
			Hint:   "fix " + PreCommitConfigFile,
			URL:    preCommitConfigURL,
		}
	}
	if cfg.Repos == nil {
		return Result{
			Name:   "hook config",
			Status: StatusFail,
			Detail: "no `repos` key",
			Hint:   "add a `repos:` list",
			URL:    preCommitConfigURL,
		}
	}

	hooks := 0
	for _, r := range *cfg.Repos {
		hooks += len(r.Hooks)
	}
	return Result{
		Name:   "hook config",
		Status: StatusOK,
		Detail: fmt.Sprintf("%s (%d repos, %d hooks)", PreCommitConfigFile, len(*cfg.Repos), hooks),
	}
}
