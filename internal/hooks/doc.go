// Package hooks builds the command lines tinty runs after applying a theme.
//
// Nothing here executes a command: callers receive the final string and
// decide how to run it.
//
// # Placeholder Substitution
//
// Two placeholders are substituted:
//
//   - %f in an item hook: the applied theme file, double-quoted
//   - {} in the shell template: the script to run, inserted as-is
//
// Example config:
//
//	shell = "sh -c '{}'"
//
//	[[items]]
//	name = "tinted-shell"
//	hook = ". %f"
//
// Applying /data/theme.sh yields: sh -c '. "/data/theme.sh"'
//
// The theme file is double-quoted, with single quotes written as '\'', so
// it stays valid inside a single-quoted {} such as the default shell
// template. Other quoting styles around {} are not accounted for.
package hooks
