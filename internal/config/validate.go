package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/tinted-theming/tinty/internal/scheme"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// normalize applies defaults to d and validates the result.
// Steps run in order: paths are expanded before they are checked.
func normalize(d *draft) (*Config, error) {
	shell := DefaultShell
	if d.shell != nil {
		shell = *d.shell
	}

	items := d.items
	if items == nil {
		// Single built-in item, nothing to deduplicate.
		items = []Item{DefaultItem()}
	} else if err := ensureUniqueNames(items); err != nil {
		return nil, err
	}

	for i := range items {
		if err := normalizeItem(&items[i]); err != nil {
			return nil, err
		}
	}

	if !strings.Contains(shell, ShellPlaceholder) {
		return nil, fmt.Errorf("%w: the configured shell %q does not contain the required command placeholder %q, check the default config for examples",
			ErrMissingShellPlaceholder, shell, ShellPlaceholder)
	}

	return &Config{
		Shell:         shell,
		DefaultScheme: d.defaultScheme,
		Items:         items,
		Hooks:         d.hooks,
	}, nil
}

// ensureUniqueNames reports the first item name that was already seen.
func ensureUniqueNames(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Name]; ok {
			return fmt.Errorf("%w: item.name should be unique, but %q is used for more than one item, change it to a unique value",
				ErrDuplicateItemName, item.Name)
		}
		seen[item.Name] = struct{}{}
	}
	return nil
}

func normalizeItem(item *Item) error {
	if len(item.SupportedSystems) == 0 {
		item.SupportedSystems = []scheme.System{scheme.Default}
	}

	path, err := expandHome(item.Path)
	if err != nil {
		return err
	}
	item.Path = path

	return validateItemPath(*item)
}

// expandHome trims path and replaces a leading ~/ with the home directory.
func expandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: unable to determine a home directory for %q, use an absolute path instead",
			ErrHomeDirUnresolvable, path)
	}
	return strings.TrimSuffix(home, "/") + "/" + rest, nil
}

// validateItemPath accepts a URL or an existing local directory.
func validateItemPath(item Item) error {
	if isURL(item.Path) || isDir(item.Path) {
		return nil
	}
	return fmt.Errorf("%w: item %q has path %q, which is not a valid url and is not a path to an existing local directory",
		ErrInvalidItemPath, item.Name, item.Path)
}

// isURL reports whether s is an absolute URL.
// Hierarchical web schemes also need a host, so "https://" is rejected.
func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != ""
	}
	return true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
