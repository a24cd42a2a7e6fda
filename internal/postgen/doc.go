// Package postgen installs the commit-hook manager into a freshly generated
// project.
//
// The scaffolding engine renders the template, changes into the new project
// and runs `cutter post-gen`. [Installer.Run] invokes the hook manager once
// (by default `pre-commit install --install-hooks`), blocks until it exits
// and returns an [Outcome]. There is no timeout and no retry.
//
// # Outcomes
//
// Exactly one of two things happens:
//
//   - Success: a success-marked line is printed and the process exits 0.
//   - Failure: a failure-marked line with the tool's diagnostic is printed
//     and the process exits 1.
//
// A hook manager missing from PATH is a Failure like any other; every
// failure wraps [ErrHookInstallationFailed] and callers do not distinguish
// causes.
package postgen
