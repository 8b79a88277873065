// Package cmd - section commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tutoring-sim/core/analysis"
	"tutoring-sim/core/output"
	"tutoring-sim/core/scenario"
	"tutoring-sim/internal/config"
	"tutoring-sim/internal/errors"
	"tutoring-sim/internal/logging"
)

var sectionShort = map[analysis.Section]string{
	analysis.SectionOverview:    "Evaluate all four business models",
	analysis.SectionPricing:     "Price monthly tutoring hours (piecewise tiers)",
	analysis.SectionAdvertising: "Project advertising reach and spend (exponential)",
	analysis.SectionProfit:      "Analyze profit, break-even and optimum (quadratic)",
	analysis.SectionSeasonality: "Forecast seasonal enrollment (trigonometric)",
}

// queryFlags override the scenario's current query values
type queryFlags struct {
	hours    float64
	days     float64
	target   float64
	budget   float64
	students float64
	month    int
}

func newSectionCmd(section analysis.Section, opts *rootOptions) *cobra.Command {
	q := &queryFlags{}

	cmd := &cobra.Command{
		Use:   section.String(),
		Short: sectionShort[section],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSection(cmd, section, opts, q)
		},
	}

	flags := cmd.Flags()
	if section == analysis.SectionOverview || section == analysis.SectionPricing {
		flags.Float64Var(&q.hours, "hours", 0, "monthly tutoring hours")
	}
	if section == analysis.SectionOverview || section == analysis.SectionAdvertising {
		flags.Float64Var(&q.days, "days", 0, "campaign days elapsed")
		flags.Float64Var(&q.target, "target", 0, "target fraction of max reach, in [0, 1)")
		flags.Float64Var(&q.budget, "budget", 0, "advertising budget")
	}
	if section == analysis.SectionOverview || section == analysis.SectionProfit {
		flags.Float64Var(&q.students, "students", 0, "current number of students")
	}
	if section == analysis.SectionOverview || section == analysis.SectionSeasonality {
		flags.IntVar(&q.month, "month", 0, "current month (1-12)")
	}

	return cmd
}

func runSection(cmd *cobra.Command, section analysis.Section, opts *rootOptions, q *queryFlags) error {
	cfg := config.Get()

	s, err := loadScenario(opts, cfg)
	if err != nil {
		return err
	}
	q.applyTo(cmd, &s)

	curvePoints := cfg.Output.CurvePoints
	if opts.curvePoints >= 0 {
		curvePoints = opts.curvePoints
	}

	report, err := analysis.Analyze(section, s, analysis.Options{CurvePoints: curvePoints})
	if err != nil {
		return err
	}

	formatter, err := formatterFor(opts, cfg)
	if err != nil {
		return err
	}

	logging.Debug("rendering report",
		zap.String("id", report.ID),
		zap.String("format", string(formatter.Format())),
	)
	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		return errors.Internal("failed to render report", err).WithContext("format", string(formatter.Format()))
	}
	return nil
}

// applyTo copies only the flags the user set
func (q *queryFlags) applyTo(cmd *cobra.Command, s *scenario.Scenario) {
	flags := cmd.Flags()
	if flags.Changed("hours") {
		s.Query.Hours = q.hours
	}
	if flags.Changed("days") {
		s.Query.DaysElapsed = q.days
	}
	if flags.Changed("target") {
		s.Query.TargetFraction = q.target
	}
	if flags.Changed("budget") {
		s.Query.Budget = q.budget
	}
	if flags.Changed("students") {
		s.Query.Students = q.students
	}
	if flags.Changed("month") {
		s.Query.Month = q.month
	}
}

func loadScenario(opts *rootOptions, cfg *config.Config) (scenario.Scenario, error) {
	path := opts.scenarioFile
	if path == "" {
		path = cfg.Scenario.Path
	}
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

func formatterFor(opts *rootOptions, cfg *config.Config) (output.Formatter, error) {
	format := opts.format
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	registry := output.NewRegistry(output.Options{Currency: cfg.Output.Currency})
	return registry.Get(format)
}
