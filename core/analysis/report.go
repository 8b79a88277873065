package analysis

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"tutoring-sim/core/model"
	"tutoring-sim/internal/errors"
)

// Report contains the analytics for one section of a scenario
type Report struct {
	// ID uniquely identifies this report
	ID string `json:"id"`

	// Scenario is the name of the evaluated scenario
	Scenario string `json:"scenario"`

	// Section is the requested view
	Section Section `json:"section"`

	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `json:"generated_at"`

	Pricing     *PricingReport     `json:"pricing,omitempty"`
	Advertising *AdvertisingReport `json:"advertising,omitempty"`
	Profit      *ProfitReport      `json:"profit,omitempty"`
	Seasonality *SeasonalityReport `json:"seasonality,omitempty"`
}

// PricingReport prices the current monthly hours
type PricingReport struct {
	Params model.PricingParams `json:"params"`

	// Hours is the evaluated monthly hours
	Hours float64 `json:"hours"`

	// Tier is the tier the hours fall into
	Tier string `json:"tier"`

	// MonthlyCost is the total bill for the month
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// HourlyRate is MonthlyCost / Hours
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// Curve samples cost over hours
	Curve []Point `json:"curve,omitempty"`
}

// AdvertisingReport evaluates a campaign at the current day
type AdvertisingReport struct {
	Params model.AdvertisingParams `json:"params"`

	// TargetFraction is the planned share of max reach
	TargetFraction float64 `json:"target_fraction"`

	// DaysToTarget is how long the campaign needs to hit TargetFraction
	DaysToTarget float64 `json:"days_to_target"`

	// DaysElapsed is the evaluated campaign day
	DaysElapsed float64 `json:"days_elapsed"`

	// CurrentReach is the audience reached so far
	CurrentReach float64 `json:"current_reach"`

	// CostSoFar is the spend for CurrentReach
	CostSoFar decimal.Decimal `json:"cost_so_far"`

	// Budget is the available budget
	Budget decimal.Decimal `json:"budget"`

	// ReachForBudget is the audience the budget can buy
	ReachForBudget float64 `json:"reach_for_budget"`

	// Curve samples reach over days
	Curve []Point `json:"curve,omitempty"`
}

// ProfitReport evaluates the business at the current student count
type ProfitReport struct {
	Params model.ProfitParams `json:"params"`

	// Students is the evaluated student count
	Students float64 `json:"students"`

	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`

	// BreakEven is nil when the business never breaks even
	BreakEven *float64 `json:"break_even,omitempty"`

	// Unbounded is set when profit grows without limit
	Unbounded bool `json:"unbounded,omitempty"`

	// OptimalStudents and MaxProfit are nil when Unbounded
	OptimalStudents *float64         `json:"optimal_students,omitempty"`
	MaxProfit       *decimal.Decimal `json:"max_profit,omitempty"`

	// Curve samples profit over students
	Curve []Point `json:"curve,omitempty"`
}

// SeasonalityReport evaluates enrollment over the year
type SeasonalityReport struct {
	Params model.SeasonalityParams `json:"params"`

	// Month is the evaluated month
	Month int `json:"month"`

	// Enrollment is the expected enrollment in Month
	Enrollment float64 `json:"enrollment"`

	PeakMonth      int     `json:"peak_month"`
	PeakEnrollment float64 `json:"peak_enrollment"`

	// Months and Enrollments are the sampled year, in month order
	Months      []int     `json:"months"`
	Enrollments []float64 `json:"enrollments"`

	Stats model.SeasonalStats `json:"stats"`

	// Curve samples enrollment continuously over the year
	Curve []Point `json:"curve,omitempty"`
}

// derived collects the first derived value that leaves the float64 range.
// Finite parameters can still overflow, e.g. a cost for 1e308 hours.
type derived struct {
	err error
}

func (d *derived) finite(field string, v float64) bool {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		return true
	}
	if d.err == nil {
		d.err = errors.Inputf("%s is out of range", field).WithContext("field", field)
	}
	return false
}

// value passes v through, recording an error when it is not finite
func (d *derived) value(field string, v float64) float64 {
	d.finite(field, v)
	return v
}

// money rounds a currency amount to cents
func (d *derived) money(field string, v float64) decimal.Decimal {
	if !d.finite(field, v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

func (d *derived) values(field string, vs []float64) []float64 {
	for _, v := range vs {
		if !d.finite(field, v) {
			break
		}
	}
	return vs
}

func (d *derived) curve(field string, points []Point) []Point {
	for _, p := range points {
		if !d.finite(field, p.Y) {
			break
		}
	}
	return points
}
