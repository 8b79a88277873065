package model

import "math"

// MonthsPerYear is the sampling size of a yearly enrollment series
const MonthsPerYear = 12

// SeasonalityParams shape the yearly enrollment curve
type SeasonalityParams struct {
	// BaseEnrollment is the mean level of the curve
	BaseEnrollment float64 `json:"base_enrollment"`

	// Amplitude1 scales the yearly (period 12) sine term
	Amplitude1 float64 `json:"amplitude1"`

	// Amplitude2 scales the half-yearly (period 6) cosine term
	Amplitude2 float64 `json:"amplitude2"`

	// Phase1 shifts the yearly term, in months
	Phase1 float64 `json:"phase1"`

	// Phase2 shifts the half-yearly term, in months
	Phase2 float64 `json:"phase2"`
}

// SeasonalStats summarize a sampled year of enrollment
type SeasonalStats struct {
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// SeasonalityModel models enrollment by month as
// S(t) = base + a1*sin(pi*(t+p1)/6) + a2*cos(pi*(t+p2)/3).
// The composite has period 12.
type SeasonalityModel struct {
	params SeasonalityParams
}

// NewSeasonalityModel creates a seasonality model from a parameter snapshot
func NewSeasonalityModel(params SeasonalityParams) SeasonalityModel {
	return SeasonalityModel{params: params}
}

// Params returns the parameter snapshot
func (m SeasonalityModel) Params() SeasonalityParams {
	return m.params
}

// CalculateEnrollment returns expected enrollment for month.
// month is continuous; integer values 1..12 are January..December.
func (m SeasonalityModel) CalculateEnrollment(month float64) float64 {
	p := m.params
	yearly := p.Amplitude1 * math.Sin(math.Pi*(month+p.Phase1)/6)
	halfYearly := p.Amplitude2 * math.Cos(math.Pi*(month+p.Phase2)/3)
	return p.BaseEnrollment + yearly + halfYearly
}

// GenerateYearlyData samples months 1..12 in order and returns the months
// alongside their enrollments.
func (m SeasonalityModel) GenerateYearlyData() ([]int, []float64) {
	months := make([]int, MonthsPerYear)
	enrollments := make([]float64, MonthsPerYear)
	for i := range months {
		months[i] = i + 1
		enrollments[i] = m.CalculateEnrollment(float64(i + 1))
	}
	return months, enrollments
}

// FindPeakMonth returns the sampled month with the highest enrollment.
// Ties go to the earliest month.
func (m SeasonalityModel) FindPeakMonth() (int, float64) {
	months, enrollments := m.GenerateYearlyData()

	peak := 0
	for i := 1; i < len(enrollments); i++ {
		if enrollments[i] > enrollments[peak] {
			peak = i
		}
	}
	return months[peak], enrollments[peak]
}

// YearlyStats summarizes the twelve sampled months
func (m SeasonalityModel) YearlyStats() SeasonalStats {
	_, enrollments := m.GenerateYearlyData()

	stats := SeasonalStats{Min: enrollments[0], Max: enrollments[0]}
	var sum float64
	for _, e := range enrollments {
		sum += e
		stats.Min = math.Min(stats.Min, e)
		stats.Max = math.Max(stats.Max, e)
	}
	stats.Mean = sum / float64(len(enrollments))

	var sq float64
	for _, e := range enrollments {
		d := e - stats.Mean
		sq += d * d
	}
	stats.StdDev = math.Sqrt(sq / float64(len(enrollments)))

	return stats
}
