package config

import (
	"fmt"
	"strings"

	"github.com/tinted-theming/tinty/internal/scheme"
)

// unsetShell is printed for a Config that was never loaded.
// It is not a valid shell on reload.
const unsetShell = "None"

// String renders the item as an [[items]] table, preceded by a blank line
// and without a trailing newline.
func (i Item) String() string {
	var b strings.Builder

	systems := i.SupportedSystems
	if len(systems) == 0 {
		systems = []scheme.System{scheme.Default}
	}
	names := make([]string, len(systems))
	for n, s := range systems {
		names[n] = s.String()
	}

	b.WriteString("\n[[items]]\n")
	fmt.Fprintf(&b, "name = %s\n", quote(i.Name))
	fmt.Fprintf(&b, "path = %s\n", quote(i.Path))
	if i.Hook != "" {
		fmt.Fprintf(&b, "hook = %s\n", quote(i.Hook))
	}
	fmt.Fprintf(&b, "supported-systems = %s\n", quoteList(names))
	fmt.Fprintf(&b, "themes-dir = %s", quote(i.ThemesDir))
	if i.ThemeFileExtension != "" {
		fmt.Fprintf(&b, "\ntheme-file-extension = %s", quote(i.ThemeFileExtension))
	}

	return b.String()
}

// String renders the config as TOML.
// Root keys come first since TOML assigns anything after [[items]] to the item.
func (c *Config) String() string {
	var b strings.Builder

	shell := c.Shell
	if shell == "" {
		shell = unsetShell
	}
	fmt.Fprintf(&b, "shell = %s\n", quote(shell))
	if c.DefaultScheme != "" {
		fmt.Fprintf(&b, "default-scheme = %s\n", quote(c.DefaultScheme))
	}
	if len(c.Hooks) > 0 {
		fmt.Fprintf(&b, "hooks = %s\n", quoteList(c.Hooks))
	}

	for _, item := range c.Items {
		b.WriteString(item.String())
		b.WriteString("\n")
	}

	return b.String()
}

// quote returns s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
