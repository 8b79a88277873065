// Package cmd provides the CLI commands for tutoring-sim.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tutoring-sim/core/analysis"
	"tutoring-sim/internal/config"
	"tutoring-sim/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	cfgFile      string
	scenarioFile string
	format       string
	curvePoints  int
	verbose      bool
}

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tutoring-sim",
		Short: "Simulate the business models of a math tutoring service",
		Long: `tutoring-sim evaluates four closed-form business models for a
tutoring service: tiered pricing, exponential advertising reach,
quadratic profit and trigonometric seasonal enrollment.

Parameters come from an HCL scenario file (or built-in defaults) and
can be overridden per query with flags.

Examples:
  tutoring-sim overview
  tutoring-sim pricing --hours 12
  tutoring-sim profit --scenario spring.hcl --format json
  tutoring-sim seasonality --month 3 --curve 48`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.tutoring-sim.json)")
	rootCmd.PersistentFlags().StringVarP(&opts.scenarioFile, "scenario", "s", "", "HCL scenario file (default uses built-in parameters)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (cli, json, markdown)")
	rootCmd.PersistentFlags().IntVar(&opts.curvePoints, "curve", -1, "number of curve samples per section (0 disables)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newSectionCmd(analysis.SectionOverview, opts))
	for _, section := range analysis.AllSections() {
		rootCmd.AddCommand(newSectionCmd(section, opts))
	}
	rootCmd.AddCommand(newScenarioCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

func initConfig(opts *rootOptions) error {
	cfg, err := config.Load(configPath(opts))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("keeping default logger", zap.String("output", cfg.Logging.Output), zap.Error(err))
	}
	return nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tutoring-sim version %s\n", Version)
		},
	}
}
