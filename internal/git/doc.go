// Package git provides the few git operations cutter needs, via the git CLI.
//
// Commands go through a [cmd.Runner] so callers (and tests) choose how git
// is executed:
//
//   - [CheckGit]: git is on PATH
//   - [IsInsideWorkTree]: a directory belongs to a work tree
//   - [Init]: create a repository
//
// Hook lookup reads the repository with go-git instead, since it only
// needs to find the git directory:
//
//   - [HooksDir]: the hooks directory for any path inside the work tree
//   - [HookInstalled]: a hook script is present and executable
package git
