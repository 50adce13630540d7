package ta

import "math"

// SMA returns the simple moving average of the last n values, or NaN when
// the series is too short.
func SMA(closes []float64, n int) float64 {
	if len(closes) < n || n <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := len(closes) - n; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(n)
}

// RSI computes the simple-average Relative Strength Index over the last
// `period` day-over-day deltas. Needs period+1 closes; returns NaN
// otherwise. A window with zero average loss yields 100.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 || period <= 0 {
		return math.NaN()
	}
	gain, loss := 0.0, 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100.0
	}
	rs := (gain / float64(period)) / (loss / float64(period))
	return 100.0 - (100.0 / (1.0 + rs))
}

// Round2 rounds to two decimal places, the precision signals are reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
