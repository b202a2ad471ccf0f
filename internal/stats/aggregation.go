package stats

import "math"

// Sum returns the sum of all values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Max returns the maximum value, or 0 for an empty slice
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Shares returns each value's fraction of the total.
// All shares are zero when the total is zero.
func Shares(values []float64) []float64 {
	shares := make([]float64, len(values))
	total := Sum(values)
	if total == 0 {
		return shares
	}
	for i, v := range values {
		shares[i] = v / total
	}
	return shares
}

// AxisTicks returns the labels of a quartered value axis, top first:
// max, 75%, 50%, 25% (rounded) and 0.
func AxisTicks(maxValue float64) []float64 {
	return []float64{
		maxValue,
		math.Round(maxValue * 0.75),
		math.Round(maxValue * 0.5),
		math.Round(maxValue * 0.25),
		0,
	}
}
