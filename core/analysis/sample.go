package analysis

// Point is one sample of a model function
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Range is a closed sampling interval
type Range struct {
	From float64
	To   float64
}

// Curve ranges used for each section
var (
	HoursRange    = Range{From: 1, To: 20}
	DaysRange     = Range{From: 1, To: 30}
	StudentsRange = Range{From: 1, To: 200}
	MonthsRange   = Range{From: 1, To: 12}
)

// Linspace returns n evenly spaced values from from to to, inclusive.
// n == 1 yields from alone; n <= 0 yields nil.
func Linspace(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{from}
	}

	step := (to - from) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = from + step*float64(i)
	}
	values[n-1] = to
	return values
}

// Sample evaluates fn at n evenly spaced points of r
func Sample(fn func(float64) float64, r Range, n int) []Point {
	xs := Linspace(r.From, r.To, n)
	if xs == nil {
		return nil
	}

	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Y: fn(x)}
	}
	return points
}
