// Package config handles loading and validation of cutter configuration.
//
// # Configuration Sources (highest priority first)
//
//   - .cutter.toml in the project directory (see [LocalConfigFileName])
//   - CUTTER_CONFIG env var: path of the global config file
//   - ~/.config/cutter/config.toml
//   - Default values
//
// # Hook Manager
//
// The [hook_manager] section names the tool post-gen installs:
//
//	[hook_manager]
//	name = "pre-commit"
//	command = "pre-commit"
//	args = ["install", "--install-hooks"]
//
// Leaving it out gives exactly the defaults above.
//
// # Theme
//
//	[theme]
//	name = "nord"      # none, default, dracula, nord, gruvbox, catppuccin
//	mode = "auto"      # auto, light, dark
//	nerdfont = false
//
// # Post-generation
//
//	[post_gen]
//	spinner = true     # animate on stderr while the install runs (TTY only)
package config
