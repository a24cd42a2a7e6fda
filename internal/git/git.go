package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/raphi011/cutter/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit resolves git with lookPath (exec.LookPath when nil) and
// returns its path, or ErrGitNotFound.
func CheckGit(lookPath func(string) (string, error)) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath("git")
	if err != nil {
		return "", ErrGitNotFound
	}
	return path, nil
}

// IsInsideWorkTree reports whether dir is inside a git work tree.
func IsInsideWorkTree(ctx context.Context, r cmd.Runner, dir string) bool {
	return r.Run(ctx, dir, "git", "rev-parse", "--is-inside-work-tree") == nil
}

// Init creates an empty repository in dir.
func Init(ctx context.Context, r cmd.Runner, dir string) error {
	if err := r.Run(ctx, dir, "git", "init"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// HooksDir returns the hooks directory of the repository containing dir.
// dir may be any directory inside the work tree.
func HooksDir(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}
	st, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("repository at %s is not stored on disk", dir)
	}
	return filepath.Join(st.Filesystem().Root(), "hooks"), nil
}

// HookInstalled reports whether an executable hook script called name
// exists in the repository containing dir.
func HookInstalled(dir, name string) bool {
	hooks, err := HooksDir(dir)
	if err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(hooks, name))
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}
