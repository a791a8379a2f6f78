package hooks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinted-theming/tinty/internal/config"
)

// ThemeFilePlaceholder is replaced with the theme file path in item hooks.
const ThemeFilePlaceholder = "%f"

// ErrNoHook is returned for an item without a hook.
var ErrNoHook = errors.New("item has no hook")

// doubleQuote wraps s in double quotes, escaping the characters the shell
// still interprets inside them. A single quote becomes '\'' so the result
// also survives the single-quoted {} of the shell template.
// e.g., `a"b$c` becomes "a\"b\$c", `it's` becomes "it'\''s"
func doubleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		case '\'':
			b.WriteString(`'\''`)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// SubstituteThemeFile replaces every %f in hook with the quoted theme file.
func SubstituteThemeFile(hook, themeFile string) string {
	return strings.ReplaceAll(hook, ThemeFilePlaceholder, doubleQuote(themeFile))
}

// WrapShell inserts script into the shell template at every {}.
func WrapShell(shell, script string) string {
	return strings.ReplaceAll(shell, config.ShellPlaceholder, script)
}

// ItemCommand returns the command line that runs item's hook for themeFile
// through cfg.Shell. Returns ErrNoHook if the item has none.
func ItemCommand(cfg *config.Config, item config.Item, themeFile string) (string, error) {
	if item.Hook == "" {
		return "", fmt.Errorf("%w: %q", ErrNoHook, item.Name)
	}
	return WrapShell(cfg.Shell, SubstituteThemeFile(item.Hook, themeFile)), nil
}

// GlobalCommands returns the command lines for cfg.Hooks, in order.
func GlobalCommands(cfg *config.Config) []string {
	cmds := make([]string, len(cfg.Hooks))
	for i, hook := range cfg.Hooks {
		cmds[i] = WrapShell(cfg.Shell, hook)
	}
	return cmds
}
