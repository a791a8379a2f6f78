package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/log"
	"github.com/tinted-theming/tinty/internal/output"
)

func newConfigCmd() *cobra.Command {
	var (
		configPath  bool
		dataDirPath bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Show the effective configuration.

Prints config.toml after defaults are applied: the default shell, the
built-in tinted-shell item when no items are configured, and expanded ~/
paths.

Config location: $XDG_CONFIG_HOME/tinted-theming/tinty/config.toml`,
		Example: `  tinty config                        # Show effective config
  tinty config --config-path          # Print the config file path
  tinty config --data-dir-path --copy # Copy the data directory path
  tinty config init                   # Create default config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			paths := pathsFromContext(ctx)

			var path string
			switch {
			case configPath:
				path = paths.Config
			case dataDirPath:
				path = paths.DataDir
			case copyPath:
				return errors.New("--copy requires --config-path or --data-dir-path")
			default:
				cfg := config.FromContext(ctx)
				out.Print(cfg.String())
				return nil
			}

			out.Println(path)

			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&configPath, "config-path", false, "Print the config file path")
	cmd.Flags().BoolVar(&dataDirPath, "data-dir-path", false, "Print the data directory path")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the printed path to clipboard")
	cmd.MarkFlagsMutuallyExclusive("config-path", "data-dir-path")

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Long: `Create default config file.

The default config declares the tinted-shell item and the default shell.
An existing config is never overwritten without --force.`,
		Example: `  tinty config init      # Create config
  tinty config init -f   # Overwrite existing config
  tinty config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultConfigContent())
				return nil
			}

			path := pathsFromContext(ctx).Config
			if err := config.Init(path, force); err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
