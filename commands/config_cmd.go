package commands

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/penwyp/go-log-grapher/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *renderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", opts.resolvedConfigPath())
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(opts.cfg)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.resolvedConfigPath()
			if fileExists(path) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (o *renderOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return expandPath(o.configPath)
	}
	return config.ConfigPath()
}
