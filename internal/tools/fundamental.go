package tools

import (
	"context"
	"fmt"
	"log"

	"github.com/avikram/finnavigator/internal/dataflows"
	"github.com/avikram/finnavigator/internal/models"
)

// Fundamental builds a valuation scorecard from the company profile.
// Ratios the data source does not report are skipped rather than scored.
func (s *Suite) Fundamental(ctx context.Context, symbol string) *models.AnalysisResult {
	symbol = dataflows.NormalizeSymbol(symbol)
	if err := dataflows.ValidateSymbol(symbol); err != nil {
		return models.AnalysisFailure("invalid symbol %q: %v", symbol, err)
	}

	profile, err := s.data.GetCompanyProfile(ctx, symbol)
	if err != nil {
		log.Printf("Fundamental analysis failed for %s: %v", symbol, err)
		return models.AnalysisFailure("could not fetch company fundamentals for %s: %v", symbol, err)
	}

	report := scoreFundamental(profile)
	return models.FundamentalSuccess(report)
}

// scoreFundamental applies the ratio thresholds and derives the verdict.
func scoreFundamental(profile *dataflows.CompanyProfile) *models.FundamentalReport {
	score := 0
	var positives, cautions []string

	if pe := profile.TrailingPE; pe != nil {
		if *pe > 0 && *pe < 25 {
			score++
			positives = append(positives, fmt.Sprintf("P/E ratio of %.2f suggests reasonable valuation", *pe))
		} else {
			score--
			cautions = append(cautions, fmt.Sprintf("P/E ratio of %.2f is on the expensive side", *pe))
		}
	}

	if peg := profile.PEGRatio; peg != nil && *peg > 0 && *peg < 1 {
		score += 2
		positives = append(positives, fmt.Sprintf("PEG ratio of %.2f indicates growth at a fair price", *peg))
	}

	if roe := profile.ReturnOnEquity; roe != nil {
		if *roe > 0.15 {
			score += 2
			positives = append(positives, fmt.Sprintf("Return on equity of %.1f%% shows efficient capital use", *roe*100))
		} else {
			cautions = append(cautions, fmt.Sprintf("Return on equity of %.1f%% is below the 15%% benchmark", *roe*100))
		}
	}

	if de := profile.DebtToEquity; de != nil {
		if *de < 1 {
			score++
			positives = append(positives, fmt.Sprintf("Debt-to-equity of %.2f keeps leverage manageable", *de))
		} else {
			score--
			cautions = append(cautions, fmt.Sprintf("Debt-to-equity of %.2f means a heavy debt load", *de))
		}
	}

	if pb := profile.PriceToBook; pb != nil && *pb > 0 && *pb < 3 {
		score++
		positives = append(positives, fmt.Sprintf("Price-to-book of %.2f is attractive", *pb))
	}

	if ps := profile.PriceToSales; ps != nil && *ps > 0 && *ps < 2 {
		score++
		positives = append(positives, fmt.Sprintf("Price-to-sales of %.2f is attractive", *ps))
	}

	if margin := profile.ProfitMargin; margin != nil && *margin > 0.1 {
		score++
		positives = append(positives, fmt.Sprintf("Profit margin of %.1f%% shows healthy profitability", *margin*100))
	}

	name := profile.Name
	if name == "" {
		name = profile.Symbol
	}

	return &models.FundamentalReport{
		Symbol:      profile.Symbol,
		CompanyName: name,
		Positives:   positives,
		Cautions:    cautions,
		Score:       score,
		Verdict:     verdict(score),
	}
}

// verdict maps the scorecard total onto the four-step rating scale.
func verdict(score int) string {
	switch {
	case score >= 5:
		return "Very Strong"
	case score >= 3:
		return "Strong"
	case score >= 1:
		return "Average"
	default:
		return "Weak"
	}
}
