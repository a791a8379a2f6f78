package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tinted-theming/tinty/internal/scheme"
)

func TestItemString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "default item",
			item: DefaultItem(),
			want: `
[[items]]
name = "tinted-shell"
path = "https://github.com/tinted-theming/tinted-shell"
hook = ". %f"
supported-systems = ["base16"]
themes-dir = "scripts"`,
		},
		{
			name: "no hook and unset systems",
			item: Item{Name: "vim", Path: "/themes/vim", ThemesDir: "colors"},
			want: `
[[items]]
name = "vim"
path = "/themes/vim"
supported-systems = ["base16"]
themes-dir = "colors"`,
		},
		{
			name: "multiple systems and extension",
			item: Item{
				Name:               "tmux",
				Path:               "https://github.com/tinted-theming/tinted-tmux",
				ThemesDir:          "colors",
				SupportedSystems:   []scheme.System{scheme.Base16, scheme.Base24},
				ThemeFileExtension: ".conf",
			},
			want: `
[[items]]
name = "tmux"
path = "https://github.com/tinted-theming/tinted-tmux"
supported-systems = ["base16", "base24"]
themes-dir = "colors"
theme-file-extension = ".conf"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.item.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	t.Run("unset shell renders None", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		if got := cfg.String(); got != "shell = \"None\"\n" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("default scheme only when set", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Shell: DefaultShell}
		if strings.Contains(cfg.String(), "default-scheme") {
			t.Errorf("String() = %q, should omit default-scheme", cfg.String())
		}

		cfg.DefaultScheme = "base16-ocean"
		if !strings.Contains(cfg.String(), "default-scheme = \"base16-ocean\"\n") {
			t.Errorf("String() = %q, want default-scheme", cfg.String())
		}
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.DefaultScheme = "base16-ocean"
		cfg.Hooks = []string{"echo done"}
		want := `shell = "sh -c '{}'"
default-scheme = "base16-ocean"
hooks = ["echo done"]

[[items]]
name = "tinted-shell"
path = "https://github.com/tinted-theming/tinted-shell"
hook = ". %f"
supported-systems = ["base16"]
themes-dir = "scripts"
`
		if got := cfg.String(); got != want {
			t.Errorf("String() =\n%s\nwant\n%s", got, want)
		}
	})
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\themes`, `"C:\\themes"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"bell\a", `"bell\u0007"`},
		{"ünï", `"ünï"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := quote(tt.in); got != tt.want {
				t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	themes := t.TempDir()
	content := `shell = "zsh -c '{}'"
default-scheme = "base24-dracula"
hooks = ["echo \"applied\"", "tmux source ~/.tmux.conf"]

[[items]]
name = "vim"
path = "https://github.com/tinted-theming/tinted-vim"
hook = "echo vim\\done"
themes-dir = "colors"
supported-systems = ["base16", "base24", "tinted8"]
theme-file-extension = ".vim"

[[items]]
name = "local"
path = ` + quote(themes) + `
themes-dir = "themes"
`
	first, err := Read(context.Background(), writeConfig(t, content))
	if err != nil {
		t.Fatalf("first Read failed: %v", err)
	}

	rendered := first.String()
	second, err := Read(context.Background(), writeConfig(t, rendered))
	if err != nil {
		t.Fatalf("Read of rendered config failed: %v\n%s", err, rendered)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed config:\nfirst  %+v\nsecond %+v\nrendered:\n%s", first, second, rendered)
	}
}

func TestRoundTrip_Defaults(t *testing.T) {
	t.Parallel()

	first, err := Read(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(first.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read of rendered default failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed config: %+v != %+v", first, second)
	}
}

func TestUnsetShellDoesNotReload(t *testing.T) {
	t.Parallel()

	cfg := &Config{Items: []Item{DefaultItem()}}
	_, err := Read(context.Background(), writeConfig(t, cfg.String()))
	if err == nil {
		t.Fatal(`expected "None" shell placeholder to fail on reload`)
	}
}
