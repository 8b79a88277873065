package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tutoring-sim/core/analysis"
)

// printer groups digits in thousands
var printer = message.NewPrinter(language.English)

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// table is a titled list of label/value rows plus an optional curve
type table struct {
	Title string
	Rows  [][2]string

	CurveHeader [2]string
	Curve       []analysis.Point
}

func (t *table) add(label, value string) {
	t.Rows = append(t.Rows, [2]string{label, value})
}

// tables lays out every section present in the report, in display order
func tables(r *analysis.Report, opts Options) []table {
	var out []table
	if r.Pricing != nil {
		out = append(out, pricingTable(r.Pricing, opts))
	}
	if r.Advertising != nil {
		out = append(out, advertisingTable(r.Advertising, opts))
	}
	if r.Profit != nil {
		out = append(out, profitTable(r.Profit, opts))
	}
	if r.Seasonality != nil {
		out = append(out, seasonalityTable(r.Seasonality))
	}
	return out
}

func pricingTable(p *analysis.PricingReport, opts Options) table {
	t := table{Title: "Pricing Model", CurveHeader: [2]string{"Hours", "Cost"}, Curve: p.Curve}
	t.add("Tier 1 rate", fmt.Sprintf("%s/h up to %s hours", formatMoney(opts, decimal.NewFromFloat(p.Params.Tier1Rate)), formatNumber(p.Params.Tier1Max, 1)))
	t.add("Tier 2 rate", fmt.Sprintf("%s/h up to %s hours", formatMoney(opts, decimal.NewFromFloat(p.Params.Tier2Rate)), formatNumber(p.Params.Tier2Max, 1)))
	t.add("Tier 3 rate", fmt.Sprintf("%s/h", formatMoney(opts, decimal.NewFromFloat(p.Params.Tier3Rate))))
	t.add("Hours per month", formatNumber(p.Hours, 1))
	t.add("Customer tier", p.Tier)
	t.add("Monthly cost", formatMoney(opts, p.MonthlyCost))
	t.add("Hourly rate", formatMoney(opts, p.HourlyRate))
	return t
}

func advertisingTable(a *analysis.AdvertisingReport, opts Options) table {
	t := table{Title: "Advertising Campaign", CurveHeader: [2]string{"Day", "Reach"}, Curve: a.Curve}
	t.add("Maximum reach", formatNumber(a.Params.MaxReach, 0)+" people")
	t.add("Growth rate", formatNumber(a.Params.GrowthRate, 3))
	t.add("CPM", formatMoney(opts, decimal.NewFromFloat(a.Params.CPM)))
	t.add(fmt.Sprintf("Days to %s%% of max reach", formatNumber(a.TargetFraction*100, 0)), formatNumber(a.DaysToTarget, 1)+" days")
	t.add("Days elapsed", formatNumber(a.DaysElapsed, 0))
	t.add("Current reach", formatNumber(a.CurrentReach, 0)+" people")
	t.add("Cost so far", formatMoney(opts, a.CostSoFar))
	t.add("Budget", formatMoney(opts, a.Budget))
	t.add("Max reach with budget", formatNumber(a.ReachForBudget, 0)+" people")
	return t
}

func profitTable(p *analysis.ProfitReport, opts Options) table {
	t := table{Title: "Profit Analysis", CurveHeader: [2]string{"Students", "Profit"}, Curve: p.Curve}
	t.add("Students", formatNumber(p.Students, 0))
	t.add("Monthly revenue", formatMoney(opts, p.Revenue))
	t.add("Monthly expenses", formatMoney(opts, p.Expenses))
	t.add("Monthly profit", formatMoney(opts, p.Profit))

	if p.BreakEven != nil {
		t.add("Break-even point", formatNumber(*p.BreakEven, 0)+" students")
	} else {
		t.add("Break-even point", "never")
	}

	if p.Unbounded {
		t.add("Optimal student count", "unbounded")
		t.add("Maximum profit", "unbounded")
	} else if p.OptimalStudents != nil && p.MaxProfit != nil {
		t.add("Optimal student count", formatNumber(*p.OptimalStudents, 0))
		t.add("Maximum profit", formatMoney(opts, *p.MaxProfit))
	}
	return t
}

func seasonalityTable(s *analysis.SeasonalityReport) table {
	t := table{Title: "Seasonal Trends", CurveHeader: [2]string{"Month", "Enrollment"}, Curve: s.Curve}
	t.add("Current month", monthName(s.Month))
	t.add("Predicted enrollment", formatNumber(s.Enrollment, 0)+" students")
	t.add("Peak month", monthName(s.PeakMonth))
	t.add("Peak enrollment", formatNumber(s.PeakEnrollment, 0)+" students")
	for i, month := range s.Months {
		t.add("  "+monthName(month), formatNumber(s.Enrollments[i], 1))
	}
	t.add("Average enrollment", formatNumber(s.Stats.Mean, 0))
	t.add("Minimum enrollment", formatNumber(s.Stats.Min, 0))
	t.add("Maximum enrollment", formatNumber(s.Stats.Max, 0))
	t.add("Seasonal variation", formatNumber(s.Stats.StdDev, 0))
	return t
}

func monthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return fmt.Sprintf("Month %d", month)
	}
	return monthNames[month-1]
}

// formatMoney renders an amount with currency symbol and thousands separators
func formatMoney(opts Options, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + opts.Currency + printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// formatNumber renders a plain quantity with the given decimal places
func formatNumber(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	rounded := decimal.NewFromFloat(v).Round(places).InexactFloat64()
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), rounded)
}
