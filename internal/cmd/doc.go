// Package cmd runs external commands with the tool's own diagnostics
// carried in the returned error.
//
// Callers depend on the [Runner] interface; [ExecRunner] is the os/exec
// backed implementation and tests substitute stand-ins.
//
// # Usage
//
//	err := cmd.RunContext(ctx, projectDir, "pre-commit", "install", "--install-hooks")
//	if err != nil {
//	    // err.Error() is the tool's trimmed stderr when it printed any
//	}
//
// # Design Notes
//
// cutter shells out to pre-commit and git instead of reimplementing them,
// so user configuration (hook repos, credential helpers, caches) applies
// unchanged.
package cmd
