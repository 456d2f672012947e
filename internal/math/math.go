package math

import (
	"math"
	"strconv"
)

// Format formats a float with two decimals.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// SymLog is a symmetric logarithm, linear around 0 and logarithmic for large absolute values.
func SymLog(f float64) float64 {
	if f < 0 {
		return -1 * math.Log10(1-f)
	}
	return math.Log10(1 + f)
}

// Mean returns the average of the values e.g. the accuracy over all folds.
func Mean(ff []float64) float64 {
	if len(ff) == 0 {
		return 0
	}
	var sum float64
	for _, f := range ff {
		sum += f
	}
	return sum / float64(len(ff))
}

// ToInt truncates the values to integers e.g. class labels read as floats.
func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}
