package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixfbecker/resizegrid/internal/config"
)

// configCommand creates the config command for printing the configuration.
func (c *CLI) configCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

Without --config, the file at $XDG_CONFIG_HOME/resizegrid/grid.toml is used
when it exists, and the built-in defaults otherwise. Redirect the output to
that path to start from the defaults:

  $ resizegrid config --default > ~/.config/resizegrid/grid.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if !defaults {
				var err error
				if cfg, err = c.loadConfig(); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&defaults, "default", false, "print the built-in defaults")

	return cmd
}
