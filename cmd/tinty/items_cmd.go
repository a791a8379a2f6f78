package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/output"
	"github.com/tinted-theming/tinty/internal/ui/static"
)

// maxSuggestions caps "did you mean" candidates for unknown item names.
const maxSuggestions = 3

func newItemsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "items",
		Short:   "List configured items",
		Aliases: []string{"ls"},
		GroupID: GroupItems,
		Args:    cobra.NoArgs,
		Example: `  tinty items          # Table of items
  tinty items --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg.Items)
			}

			if len(cfg.Items) == 0 {
				out.Println("No items configured")
				return nil
			}

			out.Print(static.RenderItems(cfg.Items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "item <name>",
		Short:             "Show one item as it appears in config.toml",
		GroupID:           GroupItems,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeItemNames,
		Example:           `  tinty item tinted-shell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			item, ok := cfg.FindItem(args[0])
			if !ok {
				return unknownItemError(args[0], cfg.ItemNames())
			}

			// Item.String starts with a blank line separating tables
			out.Println(strings.TrimPrefix(item.String(), "\n"))
			return nil
		},
	}

	return cmd
}

// unknownItemError reports name as unknown, suggesting close matches.
func unknownItemError(name string, names []string) error {
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return fmt.Errorf("item %q not found", name)
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return fmt.Errorf("item %q not found, did you mean: %s?", name, strings.Join(suggestions, ", "))
}
