package static

import (
	"strings"
	"testing"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/scheme"
)

func TestItemTableRow(t *testing.T) {
	t.Parallel()

	item := config.Item{
		Name:               "vim",
		Path:               "https://github.com/tinted-theming/tinted-vim",
		Hook:               "echo vim",
		ThemesDir:          "colors",
		SupportedSystems:   []scheme.System{scheme.Base16, scheme.Base24},
		ThemeFileExtension: ".vim",
	}

	row := ItemTableRow(item)

	if len(row) != len(ItemTableHeaders) {
		t.Fatalf("expected %d columns, got %d", len(ItemTableHeaders), len(row))
	}

	want := []string{"vim", "https://github.com/tinted-theming/tinted-vim", "colors", "base16,base24", "echo vim", ".vim"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d (%s) = %q, want %q", i, ItemTableHeaders[i], row[i], want[i])
		}
	}
}

func TestItemTableRowPlaceholders(t *testing.T) {
	t.Parallel()

	row := ItemTableRow(config.Item{Name: "shell", Path: "/themes", ThemesDir: "scripts"})

	// HOOK and EXTENSION are unset
	for _, col := range []int{4, 5} {
		if !strings.Contains(row[col], "-") {
			t.Errorf("column %d = %q, want placeholder", col, row[col])
		}
	}
}

func TestRenderItems(t *testing.T) {
	t.Parallel()

	if got := RenderItems(nil); got != "" {
		t.Errorf("RenderItems(nil) = %q, want empty", got)
	}

	out := RenderItems([]config.Item{config.DefaultItem()})
	for _, want := range []string{"NAME", "THEMES DIR", "tinted-shell", "scripts", "base16", ". %f"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderItems output missing %q:\n%s", want, out)
		}
	}
}
