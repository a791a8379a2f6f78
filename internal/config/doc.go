// Package config handles loading and validation of tinty configuration.
//
// Configuration is read from $XDG_CONFIG_HOME/tinted-theming/tinty/config.toml
// (default ~/.config/tinted-theming/tinty/config.toml). A missing file is not
// an error: it loads the same as an empty one, which means all defaults.
//
// # Key Settings
//
//   - shell: command template used to run generated scripts, must contain "{}"
//     (default: "sh -c '{}'")
//   - default-scheme: scheme applied when none is given on the command line
//   - hooks: commands run after a theme is applied
//
// # Items
//
// Items are the tools tinty manages themes for, declared as [[items]] tables:
//
//	[[items]]
//	name = "tinted-shell"
//	path = "https://github.com/tinted-theming/tinted-shell"
//	themes-dir = "scripts"
//	hook = ". %f"
//	supported-systems = ["base16"]
//
// Without any [[items]] the built-in tinted-shell item is used. Item names
// must be unique.
//
// # Path Validation
//
// An item path is either a URL or an existing local directory. A leading ~/
// is expanded to the home directory before the directory check.
package config
