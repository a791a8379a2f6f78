// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/ui/styles"
)

// ItemTableHeaders are the column headers for ItemTableRow.
var ItemTableHeaders = []string{"NAME", "PATH", "THEMES DIR", "SYSTEMS", "HOOK", "EXTENSION"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// ItemTableRow returns the cells for one item, matching ItemTableHeaders.
// Unset optional values are shown as a muted placeholder.
func ItemTableRow(item config.Item) []string {
	systems := make([]string, len(item.SupportedSystems))
	for i, s := range item.SupportedSystems {
		systems[i] = s.String()
	}

	return []string{
		item.Name,
		item.Path,
		item.ThemesDir,
		strings.Join(systems, ","),
		orPlaceholder(item.Hook),
		orPlaceholder(item.ThemeFileExtension),
	}
}

// RenderItems renders items as a table, one row per item.
func RenderItems(items []config.Item) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = ItemTableRow(item)
	}
	return RenderTable(ItemTableHeaders, rows)
}

func orPlaceholder(s string) string {
	if s == "" {
		return styles.MutedStyle.Render(styles.Placeholder)
	}
	return s
}
