package tools

import (
	"fmt"
)

// calculateSMA calculates Simple Moving Average series over closing prices.
func calculateSMA(closes []float64, period int) ([]float64, error) {
	if len(closes) < period {
		return nil, fmt.Errorf("insufficient data for SMA calculation")
	}

	result := make([]float64, 0, len(closes)-period+1)
	for i := period - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += closes[j]
		}
		result = append(result, sum/float64(period))
	}

	return result, nil
}

// calculateEMA calculates Exponential Moving Average series, seeded with the
// SMA of the first period.
func calculateEMA(closes []float64, period int) ([]float64, error) {
	if len(closes) < period {
		return nil, fmt.Errorf("insufficient data for EMA calculation")
	}

	multiplier := 2.0 / (float64(period) + 1.0)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += closes[i]
	}
	ema := sum / float64(period)

	result := make([]float64, 0, len(closes)-period+1)
	result = append(result, ema)

	for i := period; i < len(closes); i++ {
		ema = (closes[i] * multiplier) + (ema * (1 - multiplier))
		result = append(result, ema)
	}

	return result, nil
}

// calculateRSI calculates the Relative Strength Index with Wilder smoothing.
func calculateRSI(closes []float64, period int) ([]float64, error) {
	if len(closes) < period+1 {
		return nil, fmt.Errorf("insufficient data for RSI calculation")
	}

	var gains, losses []float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	avgGain := sum(gains) / float64(period)
	avgLoss := sum(losses) / float64(period)

	var result []float64
	result = append(result, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		var gain, loss float64
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		// Smoothed averages
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)

		result = append(result, rsiValue(avgGain, avgLoss))
	}

	return result, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// calculateMACD calculates the MACD line (EMA12 - EMA26) and its 9-period
// signal line. Both series are aligned to end at the most recent close.
func calculateMACD(closes []float64) (macd []float64, signal []float64, err error) {
	ema12, err := calculateEMA(closes, 12)
	if err != nil {
		return nil, nil, err
	}
	ema26, err := calculateEMA(closes, 26)
	if err != nil {
		return nil, nil, err
	}

	// EMA26 starts 14 bars later than EMA12
	offset := len(ema12) - len(ema26)
	macd = make([]float64, len(ema26))
	for i := range ema26 {
		macd[i] = ema12[i+offset] - ema26[i]
	}

	signal, err = calculateEMA(macd, 9)
	if err != nil {
		return nil, nil, err
	}

	return macd, signal, nil
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func latest(values []float64) float64 {
	return values[len(values)-1]
}
