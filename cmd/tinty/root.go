package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tinted-theming/tinty/internal/config"
	"github.com/tinted-theming/tinty/internal/log"
	"github.com/tinted-theming/tinty/internal/output"
	"github.com/tinted-theming/tinty/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupItems  = "items"
	GroupConfig = "config"
)

// annotationSkipConfig marks commands that must run even when the config
// file is broken, e.g. to replace it.
const annotationSkipConfig = "tinty/skip-config"

// rootOptions holds the global flags.
type rootOptions struct {
	configPath string
	dataDir    string
	verbose    bool
	quiet      bool
}

// appPaths are the resolved config file and data directory.
type appPaths struct {
	Config  string
	DataDir string
}

type pathsKey struct{}

func withPaths(ctx context.Context, p appPaths) context.Context {
	return context.WithValue(ctx, pathsKey{}, p)
}

func pathsFromContext(ctx context.Context) appPaths {
	p, _ := ctx.Value(pathsKey{}).(appPaths)
	return p
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tinty",
		Short: "Change the theme of every tool at once",
		Long: `tinty applies base16, base24 and tinted8 color schemes to your shell
and tools.

Items, the tools tinty manages, are declared in config.toml. Use
'tinty config' to inspect the effective configuration.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Path to the data directory")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupItems, Title: "Item Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newItemsCmd())
	cmd.AddCommand(newItemCmd())
	cmd.AddCommand(newHookCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// setup resolves paths, attaches the logger and loads the config.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	l := log.New(cmd.ErrOrStderr(), o.verbose, o.quiet)
	ctx = log.WithLogger(ctx, l)

	paths, err := o.resolvePaths()
	if err != nil {
		return err
	}
	ctx = withPaths(ctx, paths)

	if !skipConfigLoad(cmd) {
		cfg, err := config.Read(ctx, paths.Config)
		if err != nil {
			return err
		}
		ctx = config.WithConfig(ctx, cfg)
	}

	cmd.SetContext(ctx)
	return nil
}

func (o *rootOptions) resolvePaths() (appPaths, error) {
	p := appPaths{Config: o.configPath, DataDir: o.dataDir}

	if p.Config == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return p, err
		}
		p.Config = path
	}
	if p.DataDir == "" {
		dir, err := config.DefaultDataDir()
		if err != nil {
			return p, err
		}
		p.DataDir = dir
	}
	return p, nil
}

// skipConfigLoad reports whether cmd can run without a valid config.
func skipConfigLoad(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "completion", "__complete", "help":
		return true
	}
	if cmd.Annotations[annotationSkipConfig] == "true" {
		return true
	}
	// Printing where the config lives must work while it is broken.
	for _, name := range []string{"config-path", "data-dir-path"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Primary output goes through a writer that strips styles the
	// terminal can't show
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(os.Stdout, os.Environ()))

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()), err)
		os.Exit(1)
	}
}

// printError writes err to w, styled when w is a terminal.
func printError(w io.Writer, styled bool, err error) {
	msg := err.Error()
	if styled {
		msg = styles.ErrorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tinty -h' for help")
}
