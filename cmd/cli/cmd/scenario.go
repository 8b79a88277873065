// Package cmd - scenario command
package cmd

import (
	"github.com/spf13/cobra"

	"tutoring-sim/core/scenario"
	"tutoring-sim/internal/config"
	"tutoring-sim/internal/errors"
)

func newScenarioCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Print the effective scenario as HCL",
		Long: `Print the scenario that section commands would evaluate, as HCL.

With no --scenario flag this prints the built-in defaults, which makes a
good starting point for a new scenario file:

  tutoring-sim scenario > spring.hcl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(opts, config.Get())
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(scenario.Encode(s)); err != nil {
				return errors.Internal("failed to write scenario", err)
			}
			return nil
		},
	}
}
