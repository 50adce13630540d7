package ta

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	if got := SMA(closes, 5); got != 3 {
		t.Errorf("SMA(5) = %f, want 3", got)
	}
	if got := SMA(closes, 2); got != 4.5 {
		t.Errorf("SMA(2) = %f, want 4.5", got)
	}
	if got := SMA(closes, 6); !math.IsNaN(got) {
		t.Errorf("SMA with short series = %f, want NaN", got)
	}
}

func TestRSIKnownSeries(t *testing.T) {
	// 20 closes; only the last 14 deltas matter. Those alternate +1.0 and
	// -0.5 (seven each): avg gain 0.5, avg loss 0.25, RS 2, RSI 66.67.
	closes := []float64{100, 101, 99.5, 100.5, 102, 101}
	last := closes[len(closes)-1]
	for i := 0; i < 7; i++ {
		last += 1.0
		closes = append(closes, last)
		last -= 0.5
		closes = append(closes, last)
	}
	if len(closes) != 20 {
		t.Fatalf("series length = %d, want 20", len(closes))
	}

	got := RSI(closes, 14)
	want := 100.0 - 100.0/3.0
	if math.Abs(got-want) > 0.005 {
		t.Errorf("RSI = %f, want %f", got, want)
	}
	if Round2(got) != 66.67 {
		t.Errorf("Round2(RSI) = %f, want 66.67", Round2(got))
	}
}

func TestRSIShortSeries(t *testing.T) {
	closes := make([]float64, 14) // 14 points, 13 deltas: not enough
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	if got := RSI(closes, 14); !math.IsNaN(got) {
		t.Errorf("RSI with 14 points = %f, want NaN", got)
	}
}

func TestRSIZeroLoss(t *testing.T) {
	// Strictly non-decreasing window: zero average loss, RSI pins at 100.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i/2)
	}
	if got := RSI(closes, 14); got != 100 {
		t.Errorf("RSI of non-decreasing series = %f, want 100", got)
	}
}

func TestRSIBounds(t *testing.T) {
	closes := []float64{50, 48, 51, 47, 52, 46, 53, 45, 54, 44, 55, 43, 56, 42, 57, 41}
	got := RSI(closes, 14)
	if got < 0 || got > 100 {
		t.Errorf("RSI = %f, out of [0,100]", got)
	}
}
