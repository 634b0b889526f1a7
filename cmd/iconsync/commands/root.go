// Package commands implements the CLI commands for iconsync.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/iconsync/internal/app"
	"go.trai.ch/iconsync/internal/build"
)

// CLI represents the command line interface for iconsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "iconsync",
		Short: "Convert SVG icons to PNG and WEBP and prune stale outputs",
		Long: "iconsync renames vector icons to kebab-case, rasterizes them to PNG,\n" +
			"converts every PNG to WEBP and removes outputs without a source.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runSync,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project root holding the svg, png and webp directories")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default <root>/iconsync.yaml if present)")
	rootCmd.PersistentFlags().Bool("verbose", false, "List every conversion step after the summary")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
