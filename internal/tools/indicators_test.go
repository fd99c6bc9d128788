package tools

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}

	sma, err := calculateSMA(closes, 3)
	if err != nil {
		t.Fatalf("calculateSMA() error: %v", err)
	}

	want := []float64{2, 3, 4}
	if len(sma) != len(want) {
		t.Fatalf("SMA length = %d, want %d", len(sma), len(want))
	}
	for i := range want {
		if !almostEqual(sma[i], want[i]) {
			t.Errorf("SMA[%d] = %f, want %f", i, sma[i], want[i])
		}
	}
}

func TestCalculateSMAInsufficientData(t *testing.T) {
	if _, err := calculateSMA([]float64{1, 2}, 3); err == nil {
		t.Fatal("expected error for insufficient data")
	}
}

func TestCalculateEMA(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10}

	ema, err := calculateEMA(closes, 3)
	if err != nil {
		t.Fatalf("calculateEMA() error: %v", err)
	}

	// Constant series keeps the EMA flat
	for i, v := range ema {
		if !almostEqual(v, 10) {
			t.Errorf("EMA[%d] = %f, want 10", i, v)
		}
	}
}

func TestCalculateRSIAllGains(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	rsi, err := calculateRSI(closes, 14)
	if err != nil {
		t.Fatalf("calculateRSI() error: %v", err)
	}

	if got := latest(rsi); !almostEqual(got, 100) {
		t.Errorf("RSI for monotonic gains = %f, want 100", got)
	}
}

func TestCalculateRSIAllLosses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}

	rsi, err := calculateRSI(closes, 14)
	if err != nil {
		t.Fatalf("calculateRSI() error: %v", err)
	}

	if got := latest(rsi); !almostEqual(got, 0) {
		t.Errorf("RSI for monotonic losses = %f, want 0", got)
	}
}

func TestCalculateMACDAlignment(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 50 + float64(i)*0.5
	}

	macd, signal, err := calculateMACD(closes)
	if err != nil {
		t.Fatalf("calculateMACD() error: %v", err)
	}

	if len(signal) > len(macd) {
		t.Fatalf("signal length %d exceeds MACD length %d", len(signal), len(macd))
	}

	// A steady uptrend keeps the MACD line above its signal
	if latest(macd) <= latest(signal) {
		t.Errorf("MACD %f should be above signal %f in an uptrend", latest(macd), latest(signal))
	}
}
