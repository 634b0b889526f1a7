package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/iconsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the icon directories (default command)",
		Args:  cobra.NoArgs,
		RunE:  c.runSync,
	}
}

func (c *CLI) runSync(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return c.app.Run(cmd.Context(), app.RunOptions{
		Root:       root,
		ConfigPath: configPath,
		Verbose:    verbose,
	})
}
