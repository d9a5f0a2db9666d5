package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixfbecker/resizegrid/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Global flags:
//   - --config: grid configuration file (default $XDG_CONFIG_HOME/resizegrid/grid.toml)
//   - --log-file: append logs to a file; required to see logs while the TUI runs
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Resizegrid is a resizable, reorderable terminal grid",
		Long:         `Resizegrid lays out items on a CSS-style grid in the terminal. Drag an item to reorder it, or drag its corner handle to change how many columns and rows it spans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.openLogFile(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "grid configuration file (TOML)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
