// Package doctor checks that a generated project can have its commit hooks
// installed.
//
// The checks mirror what `pre-commit install --install-hooks` needs:
//
//   - git is on PATH
//   - the configured hook manager is on PATH
//   - the project directory is a git work tree
//   - the pre-commit git hook is already installed (warning only)
//   - the project has a .pre-commit-config.yaml
//
// # Usage
//
//	d := doctor.New(cfg.HookManager, projectDir)
//	results := d.Run(ctx)
//	fmt.Print(doctor.Render(results))
//	if doctor.Failed(results) { ... }
//
// With fix enabled, [Doctor.Fix] initializes a git repository where one is
// missing. Nothing else is repaired automatically.
package doctor
