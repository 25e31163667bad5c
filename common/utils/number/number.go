package number

import (
	"math"
	"strconv"
)

const Epsilon = 0.000000001

func IsZero(f float64) bool {
	return math.Abs(f) < Epsilon
}

// AlmostEqual compares with a tolerance relative to the larger magnitude.
func AlmostEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff < Epsilon {
		return true
	}

	return diff <= Epsilon*math.Max(math.Abs(a), math.Abs(b))
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
