package main

import (
	"github.com/spf13/cobra"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/hooks"
	"github.com/tinted-theming/tinty/internal/output"
)

func newHookCmd() *cobra.Command {
	var withGlobal bool

	cmd := &cobra.Command{
		Use:               "hook <item> <theme-file>",
		Short:             "Print the command an item's hook runs",
		GroupID:           GroupItems,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return completeItemNames(cmd, args, toComplete)
		},
		Long: `Print the command an item's hook runs for a theme file.

The hook's %f is replaced with the theme file and the result is inserted
into the configured shell at {}. Nothing is executed.`,
		Example: `  tinty hook tinted-shell ~/.local/share/tinted-theming/tinty/theme.sh
  tinty hook tinted-shell theme.sh --global   # Also print global hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			item, ok := cfg.FindItem(args[0])
			if !ok {
				return unknownItemError(args[0], cfg.ItemNames())
			}

			line, err := hooks.ItemCommand(cfg, item, args[1])
			if err != nil {
				return err
			}
			out.Println(line)

			if withGlobal {
				for _, line := range hooks.GlobalCommands(cfg) {
					out.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withGlobal, "global", false, "Also print the global hooks")

	return cmd
}
