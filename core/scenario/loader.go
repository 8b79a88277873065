package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"tutoring-sim/internal/errors"
	"tutoring-sim/internal/logging"
)

// scenarioFile is the HCL layout of a scenario file. Every attribute is
// optional; nil means "keep the default".
type scenarioFile struct {
	Name        *string           `hcl:"name,optional"`
	Pricing     *pricingBlock     `hcl:"pricing,block"`
	Advertising *advertisingBlock `hcl:"advertising,block"`
	Profit      *profitBlock      `hcl:"profit,block"`
	Seasonality *seasonalityBlock `hcl:"seasonality,block"`
}

type pricingBlock struct {
	Tier1Rate *float64 `hcl:"tier1_rate,optional"`
	Tier1Max  *float64 `hcl:"tier1_max,optional"`
	Tier2Rate *float64 `hcl:"tier2_rate,optional"`
	Tier2Max  *float64 `hcl:"tier2_max,optional"`
	Tier3Rate *float64 `hcl:"tier3_rate,optional"`
	Hours     *float64 `hcl:"hours,optional"`
}

type advertisingBlock struct {
	MaxReach       *float64 `hcl:"max_reach,optional"`
	GrowthRate     *float64 `hcl:"growth_rate,optional"`
	CPM            *float64 `hcl:"cpm,optional"`
	DaysElapsed    *float64 `hcl:"days_elapsed,optional"`
	TargetFraction *float64 `hcl:"target_fraction,optional"`
	Budget         *float64 `hcl:"budget,optional"`
}

type profitBlock struct {
	FixedCosts           *float64 `hcl:"fixed_costs,optional"`
	VariableCost         *float64 `hcl:"variable_cost,optional"`
	ScalingFactor        *float64 `hcl:"scaling_factor,optional"`
	AvgRevenuePerStudent *float64 `hcl:"avg_revenue_per_student,optional"`
	Students             *float64 `hcl:"students,optional"`
}

type seasonalityBlock struct {
	BaseEnrollment *float64 `hcl:"base_enrollment,optional"`
	Amplitude1     *float64 `hcl:"amplitude1,optional"`
	Amplitude2     *float64 `hcl:"amplitude2,optional"`
	Phase1         *float64 `hcl:"phase1,optional"`
	Phase2         *float64 `hcl:"phase2,optional"`
	Month          *int     `hcl:"month,optional"`
}

// Load reads and validates a scenario file. Values the file does not set
// keep their Default().
func Load(path string) (Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrap(errors.TypeInput, "failed to read scenario", err).WithContext("path", path)
	}

	s, err := Parse(src, path)
	if err != nil {
		return Scenario{}, err
	}

	logging.Component("scenario").Debug("scenario loaded",
		zap.String("path", path),
		zap.String("name", s.Name),
	)
	return s, nil
}

// Parse decodes HCL source into a validated scenario
func Parse(src []byte, filename string) (Scenario, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Scenario{}, diagnosticsError(filename, diags)
	}

	var raw scenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Scenario{}, diagnosticsError(filename, diags)
	}

	s := Default()
	s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	raw.applyTo(&s)

	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (f scenarioFile) applyTo(s *Scenario) {
	set(&s.Name, f.Name)

	if p := f.Pricing; p != nil {
		set(&s.Pricing.Tier1Rate, p.Tier1Rate)
		set(&s.Pricing.Tier1Max, p.Tier1Max)
		set(&s.Pricing.Tier2Rate, p.Tier2Rate)
		set(&s.Pricing.Tier2Max, p.Tier2Max)
		set(&s.Pricing.Tier3Rate, p.Tier3Rate)
		set(&s.Query.Hours, p.Hours)
	}

	if a := f.Advertising; a != nil {
		set(&s.Advertising.MaxReach, a.MaxReach)
		set(&s.Advertising.GrowthRate, a.GrowthRate)
		set(&s.Advertising.CPM, a.CPM)
		set(&s.Query.DaysElapsed, a.DaysElapsed)
		set(&s.Query.TargetFraction, a.TargetFraction)
		set(&s.Query.Budget, a.Budget)
	}

	if p := f.Profit; p != nil {
		set(&s.Profit.FixedCosts, p.FixedCosts)
		set(&s.Profit.VariableCost, p.VariableCost)
		set(&s.Profit.ScalingFactor, p.ScalingFactor)
		set(&s.Profit.AvgRevenuePerStudent, p.AvgRevenuePerStudent)
		set(&s.Query.Students, p.Students)
	}

	if se := f.Seasonality; se != nil {
		set(&s.Seasonality.BaseEnrollment, se.BaseEnrollment)
		set(&s.Seasonality.Amplitude1, se.Amplitude1)
		set(&s.Seasonality.Amplitude2, se.Amplitude2)
		set(&s.Seasonality.Phase1, se.Phase1)
		set(&s.Seasonality.Phase2, se.Phase2)
		set(&s.Query.Month, se.Month)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// diagnosticsError reports the first HCL error with its source position
func diagnosticsError(filename string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Parsing(fmt.Sprintf("%s:%d: %s", filename, line, diag.Summary), diags).
			WithContext("file", filename).
			WithContext("line", line)
	}
	return errors.Parsing(filename, diags)
}
