package tools

import (
	"context"
	"fmt"
	"log"

	"github.com/avikram/finnavigator/internal/dataflows"
	"github.com/avikram/finnavigator/internal/models"
)

const (
	// minHistoryBars is the minimum bar count needed to compute SMA200.
	minHistoryBars = 200
	// rangeWindow is the lookback for support/resistance and the chart.
	rangeWindow = 90
)

// Technical runs the full indicator scorecard for a symbol over one year of
// daily bars.
func (s *Suite) Technical(ctx context.Context, symbol string) *models.AnalysisResult {
	symbol = dataflows.NormalizeSymbol(symbol)
	if err := dataflows.ValidateSymbol(symbol); err != nil {
		return models.AnalysisFailure("invalid symbol %q: %v", symbol, err)
	}

	bars, err := s.data.GetDailyBars(ctx, symbol, 365)
	if err != nil {
		log.Printf("Technical analysis failed for %s: %v", symbol, err)
		return models.AnalysisFailure("could not fetch price history for %s: %v", symbol, err)
	}
	if len(bars) < minHistoryBars {
		return models.AnalysisFailure("not enough price history for %s: need %d daily bars, got %d", symbol, minHistoryBars, len(bars))
	}

	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i], _ = bar.Close.Float64()
	}

	sma50, err := calculateSMA(closes, 50)
	if err != nil {
		return models.AnalysisFailure("indicator calculation failed for %s: %v", symbol, err)
	}
	sma200, err := calculateSMA(closes, 200)
	if err != nil {
		return models.AnalysisFailure("indicator calculation failed for %s: %v", symbol, err)
	}
	rsi, err := calculateRSI(closes, 14)
	if err != nil {
		return models.AnalysisFailure("indicator calculation failed for %s: %v", symbol, err)
	}
	macd, macdSignal, err := calculateMACD(closes)
	if err != nil {
		return models.AnalysisFailure("indicator calculation failed for %s: %v", symbol, err)
	}

	report := scoreTechnical(symbol, bars, closes, latest(sma50), latest(sma200), latest(rsi), latest(macd), latest(macdSignal))
	return models.TechnicalSuccess(report)
}

// scoreTechnical applies the weighted signal table and derives the
// buy/hold/sell distribution from the final score.
func scoreTechnical(symbol string, bars []*dataflows.Bar, closes []float64, sma50, sma200, rsi, macd, macdSignal float64) *models.TechnicalReport {
	score := 0
	var signals []string

	if sma50 > sma200 {
		score += 2
		signals = append(signals, "Golden Cross (SMA50 above SMA200): bullish long-term trend")
	} else {
		score -= 2
		signals = append(signals, "Death Cross (SMA50 below SMA200): bearish long-term trend")
	}

	current := latest(closes)
	if current > sma50 {
		score++
		signals = append(signals, fmt.Sprintf("Price %.2f above SMA50 %.2f: short-term momentum is positive", current, sma50))
	} else {
		score--
		signals = append(signals, fmt.Sprintf("Price %.2f below SMA50 %.2f: short-term momentum is negative", current, sma50))
	}

	switch {
	case rsi < 30:
		score += 2
		signals = append(signals, fmt.Sprintf("RSI at %.1f: oversold, potential rebound", rsi))
	case rsi > 70:
		score -= 2
		signals = append(signals, fmt.Sprintf("RSI at %.1f: overbought, risk of pullback", rsi))
	default:
		signals = append(signals, fmt.Sprintf("RSI at %.1f: neutral momentum", rsi))
	}

	if macd > macdSignal {
		score++
		signals = append(signals, "MACD above signal line: momentum turning positive")
	} else {
		score--
		signals = append(signals, "MACD below signal line: momentum turning negative")
	}

	if spike, ratio := volumeSpike(bars); spike {
		signals = append(signals, fmt.Sprintf("Volume at %.1fx the 20-day average: elevated trading interest", ratio))
	}

	support, resistance := priceRange(bars, rangeWindow)

	return &models.TechnicalReport{
		Symbol:         symbol,
		Signals:        signals,
		Score:          score,
		Recommendation: distribution(score),
		Support:        support,
		Resistance:     resistance,
		Current:        current,
		Chart:          chartPoints(bars, rangeWindow),
	}
}

// distribution maps a signal score onto buy/hold/sell percentages.
func distribution(score int) models.Distribution {
	switch {
	case score >= 5:
		return models.Distribution{Buy: 80, Hold: 15, Sell: 5}
	case score >= 3:
		return models.Distribution{Buy: 70, Hold: 25, Sell: 5}
	case score >= 1:
		return models.Distribution{Buy: 60, Hold: 30, Sell: 10}
	default:
		return models.Distribution{Buy: 20, Hold: 60, Sell: 20}
	}
}

// volumeSpike reports whether the latest volume exceeds 1.5x the 20-day
// average.
func volumeSpike(bars []*dataflows.Bar) (bool, float64) {
	if len(bars) < 21 {
		return false, 0
	}

	window := bars[len(bars)-21 : len(bars)-1]
	total := int64(0)
	for _, bar := range window {
		total += bar.Volume
	}
	avg := float64(total) / float64(len(window))
	if avg == 0 {
		return false, 0
	}

	ratio := float64(bars[len(bars)-1].Volume) / avg
	return ratio > 1.5, ratio
}

// priceRange returns the lowest low and highest high over the last window
// bars.
func priceRange(bars []*dataflows.Bar, window int) (support, resistance float64) {
	if len(bars) > window {
		bars = bars[len(bars)-window:]
	}

	for i, bar := range bars {
		low, _ := bar.Low.Float64()
		high, _ := bar.High.Float64()
		if i == 0 || low < support {
			support = low
		}
		if i == 0 || high > resistance {
			resistance = high
		}
	}
	return support, resistance
}

// chartPoints converts the trailing window of bars into chart data.
func chartPoints(bars []*dataflows.Bar, window int) []models.ChartPoint {
	if len(bars) > window {
		bars = bars[len(bars)-window:]
	}

	points := make([]models.ChartPoint, 0, len(bars))
	for _, bar := range bars {
		open, _ := bar.Open.Float64()
		high, _ := bar.High.Float64()
		low, _ := bar.Low.Float64()
		close, _ := bar.Close.Float64()
		points = append(points, models.ChartPoint{
			Date:   bar.Date.Format("2006-01-02"),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: bar.Volume,
		})
	}
	return points
}
