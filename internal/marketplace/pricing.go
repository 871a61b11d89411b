package marketplace

import "math"

// CalculatePrice returns quantity x unitPrice rounded half-up at the cents
// boundary
func CalculatePrice(quantity, unitPrice float64) float64 {
	return roundHalfUp(quantity*unitPrice, 2)
}

// AvailabilityPercent returns how much of the maximum supply is still
// available, as a whole percentage in [0, 100]. A zero maximum yields 0
// rather than a division by zero.
func AvailabilityPercent(available, max float64) int {
	if max <= 0 {
		return 0
	}
	pct := math.Min(100, available/max*100)
	if pct < 0 {
		pct = 0
	}
	return int(math.Round(pct))
}

func roundHalfUp(value float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Floor(value*shift+0.5) / shift
}
