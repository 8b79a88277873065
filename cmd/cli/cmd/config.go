// Package cmd - config command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tutoring-sim/internal/config"
	"tutoring-sim/internal/errors"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tutoring-sim config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Long: `Write the default configuration to the --config path
($HOME/.tutoring-sim.json when unset). An existing file is kept
unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(opts)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Input("config file already exists, use --force to overwrite").WithContext("path", path)
			}

			if err := config.Default().Save(path); err != nil {
				return errors.Config("failed to write config", err).WithContext("path", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func configPath(opts *rootOptions) string {
	if opts.cfgFile != "" {
		return opts.cfgFile
	}
	return config.DefaultPath()
}
