package analysis

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutoring-sim/core/scenario"
	"tutoring-sim/internal/errors"
	"tutoring-sim/internal/logging"
)

// Options control optional report content
type Options struct {
	// CurvePoints is the number of curve samples per section, 0 disables curves
	CurvePoints int
}

// Analyze validates the scenario and builds the report for section.
// Every call builds fresh models from the snapshot.
func Analyze(section Section, s scenario.Scenario, opts Options) (*Report, error) {
	if _, ok := sectionNames[section]; !ok {
		return nil, errors.NotSupported("section " + section.String())
	}
	if opts.CurvePoints < 0 {
		return nil, errors.Inputf("curve points must not be negative, got %d", opts.CurvePoints)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logging.Component("analysis").Debug("building report",
		zap.Stringer("section", section),
		zap.String("scenario", s.Name),
		zap.Int("curve_points", opts.CurvePoints),
	)

	report := &Report{
		ID:          uuid.NewString(),
		Scenario:    s.Name,
		Section:     section,
		GeneratedAt: time.Now().UTC(),
	}

	d := &derived{}
	if section.includes(SectionPricing) {
		report.Pricing = analyzePricing(s, opts, d)
	}
	if section.includes(SectionAdvertising) {
		report.Advertising = analyzeAdvertising(s, opts, d)
	}
	if section.includes(SectionProfit) {
		report.Profit = analyzeProfit(s, opts, d)
	}
	if section.includes(SectionSeasonality) {
		report.Seasonality = analyzeSeasonality(s, opts, d)
	}
	if d.err != nil {
		return nil, d.err
	}

	return report, nil
}

func analyzePricing(s scenario.Scenario, opts Options, d *derived) *PricingReport {
	m := s.PricingModel()
	hours := s.Query.Hours

	return &PricingReport{
		Params:      m.Params(),
		Hours:       hours,
		Tier:        m.TierFor(hours).String(),
		MonthlyCost: d.money("pricing.monthly_cost", m.CalculateCost(hours)),
		HourlyRate:  d.money("pricing.hourly_rate", m.EffectiveRate(hours)),
		Curve:       d.curve("pricing.curve", Sample(m.CalculateCost, HoursRange, opts.CurvePoints)),
	}
}

func analyzeAdvertising(s scenario.Scenario, opts Options, d *derived) *AdvertisingReport {
	m := s.AdvertisingModel()
	reach := m.CalculateReach(s.Query.DaysElapsed)

	return &AdvertisingReport{
		Params:         m.Params(),
		TargetFraction: s.Query.TargetFraction,
		DaysToTarget:   d.value("advertising.days_to_target", m.DaysToReachFraction(s.Query.TargetFraction)),
		DaysElapsed:    s.Query.DaysElapsed,
		CurrentReach:   d.value("advertising.current_reach", reach),
		CostSoFar:      d.money("advertising.cost_so_far", m.CalculateCost(reach)),
		Budget:         d.money("advertising.budget", s.Query.Budget),
		ReachForBudget: d.value("advertising.reach_for_budget", m.ReachForBudget(s.Query.Budget)),
		Curve:          d.curve("advertising.curve", Sample(m.CalculateReach, DaysRange, opts.CurvePoints)),
	}
}

func analyzeProfit(s scenario.Scenario, opts Options, d *derived) *ProfitReport {
	m := s.ProfitModel()
	students := s.Query.Students

	r := &ProfitReport{
		Params:   m.Params(),
		Students: students,
		Revenue:  d.money("profit.revenue", m.CalculateRevenue(students)),
		Expenses: d.money("profit.expenses", m.CalculateExpenses(students)),
		Profit:   d.money("profit.profit", m.CalculateProfit(students)),
		Curve:    d.curve("profit.curve", Sample(m.CalculateProfit, StudentsRange, opts.CurvePoints)),
	}

	if breakEven, ok := m.CalculateBreakEven(); ok && d.finite("profit.break_even", breakEven) {
		r.BreakEven = &breakEven
	}

	optimal := m.CalculateOptimalStudents()
	if math.IsInf(optimal, 1) {
		r.Unbounded = true
	} else {
		maxProfit := d.money("profit.max_profit", m.MaxProfit())
		r.OptimalStudents = &optimal
		r.MaxProfit = &maxProfit
	}

	return r
}

func analyzeSeasonality(s scenario.Scenario, opts Options, d *derived) *SeasonalityReport {
	m := s.SeasonalityModel()
	months, enrollments := m.GenerateYearlyData()
	peakMonth, peak := m.FindPeakMonth()
	stats := m.YearlyStats()

	d.values("seasonality.stats", []float64{stats.Mean, stats.Min, stats.Max, stats.StdDev})

	return &SeasonalityReport{
		Params:         m.Params(),
		Month:          s.Query.Month,
		Enrollment:     d.value("seasonality.enrollment", m.CalculateEnrollment(float64(s.Query.Month))),
		PeakMonth:      peakMonth,
		PeakEnrollment: d.value("seasonality.peak_enrollment", peak),
		Months:         months,
		Enrollments:    d.values("seasonality.enrollments", enrollments),
		Stats:          stats,
		Curve:          d.curve("seasonality.curve", Sample(m.CalculateEnrollment, MonthsRange, opts.CurvePoints)),
	}
}
