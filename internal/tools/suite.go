package tools

import (
	"context"
	"log"

	"github.com/avikram/finnavigator/internal/config"
	"github.com/avikram/finnavigator/internal/dataflows"
)

// Suite bundles the analysis tools behind a single market data provider and
// news scraper. Every method returns a populated AnalysisResult; failures are
// reported through the envelope, never as a Go error.
type Suite struct {
	cfg     *config.Config
	data    dataflows.MarketDataProvider
	scraper dataflows.NewsScraper
}

func NewSuite(cfg *config.Config, data dataflows.MarketDataProvider, scraper dataflows.NewsScraper) *Suite {
	return &Suite{
		cfg:     cfg,
		data:    data,
		scraper: scraper,
	}
}

// NewDefaultSuite wires the suite to Google News and a market data source:
// Longport when its credentials are configured, Yahoo Finance otherwise.
func NewDefaultSuite(cfg *config.Config) *Suite {
	var data dataflows.MarketDataProvider = dataflows.NewYahooFinanceClient(cfg)

	if cfg.LongportAppKey != "" {
		longport, err := dataflows.NewLongportClient(dataflows.LongportConfig{
			AppKey:      cfg.LongportAppKey,
			AppSecret:   cfg.LongportAppSecret,
			AccessToken: cfg.LongportAccessToken,
		})
		if err != nil {
			log.Printf("Failed to create Longport client, falling back to Yahoo Finance: %v", err)
		} else {
			data = longport
		}
	}

	return NewSuite(cfg, data, dataflows.NewGoogleNewsScraper(cfg))
}

// companyName resolves a display name for a symbol, falling back to the
// symbol itself when the profile lookup fails.
func (s *Suite) companyName(ctx context.Context, symbol string) string {
	profile, err := s.data.GetCompanyProfile(ctx, symbol)
	if err != nil || profile.Name == "" {
		log.Printf("Could not resolve company name for %s, using symbol", symbol)
		return symbol
	}
	return profile.Name
}
