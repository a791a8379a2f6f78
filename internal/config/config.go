package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/BurntSushi/toml"

	"github.com/tinted-theming/tinty/internal/log"
	"github.com/tinted-theming/tinty/internal/scheme"
	"github.com/tinted-theming/tinty/internal/storage"
)

const (
	AppName        = "tinty"
	OrgName        = "tinted-theming"
	ConfigFileName = "config.toml"

	// DefaultShell runs generated scripts when no shell is configured.
	DefaultShell = "sh -c '{}'"

	// ShellPlaceholder marks where the script path is injected into Shell.
	ShellPlaceholder = "{}"
)

// Built-in item used when the config declares no items.
const (
	DefaultItemName      = "tinted-shell"
	DefaultItemPath      = "https://github.com/tinted-theming/tinted-shell"
	DefaultItemThemesDir = "scripts"
	DefaultItemHook      = ". %f"
)

// Item is a tool integration tinty applies themes to
type Item struct {
	Name               string          `toml:"name" json:"name"`
	Path               string          `toml:"path" json:"path"` // URL or existing local directory
	Hook               string          `toml:"hook" json:"hook,omitempty"`
	ThemesDir          string          `toml:"themes-dir" json:"themes_dir"` // relative to Path
	SupportedSystems   []scheme.System `toml:"supported-systems" json:"supported_systems"`
	ThemeFileExtension string          `toml:"theme-file-extension" json:"theme_file_extension,omitempty"`
}

// Config holds the tinty configuration.
// A Config returned by Read is fully normalized and must not be modified.
type Config struct {
	Shell         string   `toml:"shell" json:"shell"`
	DefaultScheme string   `toml:"default-scheme" json:"default_scheme,omitempty"`
	Items         []Item   `toml:"items" json:"items"`
	Hooks         []string `toml:"hooks" json:"hooks,omitempty"`
}

// DefaultItem returns the built-in tinted-shell item.
func DefaultItem() Item {
	return Item{
		Name:             DefaultItemName,
		Path:             DefaultItemPath,
		Hook:             DefaultItemHook,
		ThemesDir:        DefaultItemThemesDir,
		SupportedSystems: []scheme.System{scheme.Base16},
	}
}

// DefaultConfig returns the configuration an empty config file loads to.
func DefaultConfig() Config {
	return Config{
		Shell: DefaultShell,
		Items: []Item{DefaultItem()},
	}
}

// FindItem returns the item with the given name.
func (c *Config) FindItem(name string) (Item, bool) {
	for _, item := range c.Items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// ItemNames returns item names in config order.
func (c *Config) ItemNames() []string {
	names := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		names = append(names, item.Name)
	}
	return names
}

// rawItem is an [[items]] entry as written in the file.
// Required fields are pointers so missing ones can be reported.
type rawItem struct {
	Name               *string         `toml:"name"`
	Path               *string         `toml:"path"`
	Hook               string          `toml:"hook"`
	ThemesDir          *string         `toml:"themes-dir"`
	SupportedSystems   []scheme.System `toml:"supported-systems"`
	ThemeFileExtension string          `toml:"theme-file-extension"`
}

// rawConfig is used for TOML decoding before defaults are applied
type rawConfig struct {
	Shell         *string   `toml:"shell"`
	DefaultScheme string    `toml:"default-scheme"`
	Items         []rawItem `toml:"items"`
	Hooks         []string  `toml:"hooks"`
}

// draft is a decoded config with unresolved optionals.
// A nil items slice means the file had no items key at all.
type draft struct {
	shell         *string
	defaultScheme string
	items         []Item
	hooks         []string
}

// Read loads the config file at path, applies defaults and validates it.
// A missing file loads the same as an empty one.
func Read(ctx context.Context, path string) (*Config, error) {
	l := log.FromContext(ctx)

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	d, err := decode(ctx, path, data)
	if err != nil {
		return nil, err
	}

	cfg, err := normalize(d)
	if err != nil {
		return nil, err
	}

	l.Debug("loaded config", "path", path, "items", len(cfg.Items))
	return cfg, nil
}

// readFile returns the content of path, or "" if it doesn't exist.
// A path below a regular file can't exist either (ENOTDIR).
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: the provided config path is not a file: %s", ErrPathIsDirectory, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return data, nil
}

// decode parses TOML into a draft without applying any defaults.
func decode(ctx context.Context, path string, data []byte) (*draft, error) {
	l := log.FromContext(ctx)

	var raw rawConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, parseError(path, err)
	}

	for _, key := range md.Undecoded() {
		l.Debug("ignoring unknown config key", "key", key.String(), "path", path)
	}

	d := &draft{
		shell:         raw.Shell,
		defaultScheme: raw.DefaultScheme,
		hooks:         raw.Hooks,
	}
	if !md.IsDefined("items") {
		return d, nil
	}

	d.items = make([]Item, 0, len(raw.Items))
	for i, ri := range raw.Items {
		item, err := ri.item(i)
		if err != nil {
			return nil, parseError(path, err)
		}
		d.items = append(d.items, item)
	}
	return d, nil
}

func (ri rawItem) item(index int) (Item, error) {
	missing := func(field string) error {
		return fmt.Errorf("items[%d]: missing required field %q", index, field)
	}
	if ri.Name == nil {
		return Item{}, missing("name")
	}
	if ri.Path == nil {
		return Item{}, missing("path")
	}
	if ri.ThemesDir == nil {
		return Item{}, missing("themes-dir")
	}
	return Item{
		Name:               *ri.Name,
		Path:               *ri.Path,
		Hook:               ri.Hook,
		ThemesDir:          *ri.ThemesDir,
		SupportedSystems:   slices.Clone(ri.SupportedSystems),
		ThemeFileExtension: ri.ThemeFileExtension,
	}, nil
}

func parseError(path string, err error) error {
	return fmt.Errorf("%w: couldn't parse %s configuration file %q, check if it's syntactically correct: %w", ErrParse, AppName, path, err)
}

// DefaultConfigPath returns the path to the config file:
// $XDG_CONFIG_HOME/tinted-theming/tinty/config.toml
func DefaultConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, OrgName, AppName, ConfigFileName), nil
}

// DefaultDataDir returns the directory tinty keeps cloned items and
// generated files in: $XDG_DATA_HOME/tinted-theming/tinty
func DefaultDataDir() (string, error) {
	dir, err := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, OrgName, AppName), nil
}

// xdgDir returns $env if it is absolute, otherwise ~/fallback.
// Relative values are invalid under XDG and are ignored.
func xdgDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, fallback), nil
}

const defaultConfigHeader = `# tinty configuration
#
# shell runs the scripts generated for each item, "{}" is replaced
# with the script path.
#
# Each [[items]] table is a tool tinty applies themes to:
#   name                 - unique name
#   path                 - git URL or local directory (~/ is expanded)
#   themes-dir           - directory inside path containing the themes
#   hook                 - run after applying, "%f" is the theme file
#   supported-systems    - "base16", "base24" and/or "tinted8"
#   theme-file-extension - override the extension of theme files
`

// DefaultConfigContent returns the content written by Init.
func DefaultConfigContent() string {
	cfg := DefaultConfig()
	return defaultConfigHeader + "\n" + cfg.String()
}

// Init writes the default config file to path.
// If force is false, an existing file is left untouched and an error returned.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}
	return storage.WriteFile(path, []byte(DefaultConfigContent()))
}

type ctxKey struct{}

// WithConfig attaches a loaded config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}
