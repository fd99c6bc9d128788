package dataflows

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/avikram/finnavigator/internal/config"
)

// YahooFinanceClient handles Yahoo Finance data operations
type YahooFinanceClient struct {
	cache *CacheManager
}

// NewYahooFinanceClient creates a new Yahoo Finance client
func NewYahooFinanceClient(cfg *config.Config) *YahooFinanceClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_finance")
	cache := NewCacheManager(cacheDir, 24*time.Hour, cfg.CacheEnabled) // 24 hour cache

	return &YahooFinanceClient{
		cache: cache,
	}
}

// GetQuote gets current quote data for a symbol
func (yf *YahooFinanceClient) GetQuote(ctx context.Context, symbol string) (*Bar, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached Bar
	if yf.cache.Get("yahoo", "quote", symbol, &cached) {
		return &cached, nil
	}

	var result *Bar
	err := WithRetry(DefaultRetryConfig(), func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get quote for %s: %w", symbol, err)
		}
		if q == nil {
			return fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
		}

		result = &Bar{
			Symbol:    symbol,
			Date:      time.Now(),
			Open:      decimal.NewFromFloat(q.RegularMarketOpen),
			High:      decimal.NewFromFloat(q.RegularMarketDayHigh),
			Low:       decimal.NewFromFloat(q.RegularMarketDayLow),
			Close:     decimal.NewFromFloat(q.RegularMarketPrice),
			AdjClose:  decimal.NewFromFloat(q.RegularMarketPrice),
			Volume:    int64(q.RegularMarketVolume),
			Timestamp: time.Now(),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	yf.cache.Set("yahoo", "quote", symbol, result)

	return result, nil
}

// GetHistoricalData gets historical price data for a symbol
func (yf *YahooFinanceClient) GetHistoricalData(ctx context.Context, symbol string, start, end time.Time) ([]*Bar, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	cacheKey := map[string]interface{}{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
	}

	var cached []*Bar
	if yf.cache.Get("yahoo", "historical", cacheKey, &cached) {
		return cached, nil
	}

	var result []*Bar
	err := WithRetry(DefaultRetryConfig(), func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)

		result = make([]*Bar, 0)
		for iter.Next() {
			bar := iter.Bar()

			result = append(result, &Bar{
				Symbol:    symbol,
				Date:      time.Unix(int64(bar.Timestamp), 0),
				Open:      bar.Open,
				High:      bar.High,
				Low:       bar.Low,
				Close:     bar.Close,
				AdjClose:  bar.AdjClose,
				Volume:    int64(bar.Volume),
				Timestamp: time.Now(),
			})
		}

		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to get historical data for %s: %w", symbol, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	yf.cache.Set("yahoo", "historical", cacheKey, result)

	return result, nil
}

// GetDailyBars gets historical data for a rolling window ending today
func (yf *YahooFinanceClient) GetDailyBars(ctx context.Context, symbol string, days int) ([]*Bar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	return yf.GetHistoricalData(ctx, symbol, start, end)
}

// GetCompanyProfile gets descriptive company metadata and valuation ratios
func (yf *YahooFinanceClient) GetCompanyProfile(ctx context.Context, symbol string) (*CompanyProfile, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached CompanyProfile
	if yf.cache.Get("yahoo", "profile", symbol, &cached) {
		return &cached, nil
	}

	var profile *CompanyProfile
	err := WithRetry(DefaultRetryConfig(), func() error {
		eq, err := equity.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get equity data for %s: %w", symbol, err)
		}
		if eq == nil {
			return fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
		}

		name := eq.LongName
		if name == "" {
			name = eq.ShortName
		}
		if name == "" {
			name = symbol
		}

		profile = &CompanyProfile{
			Symbol:   symbol,
			Name:     name,
			Exchange: eq.FullExchangeName,
			Currency: eq.CurrencyID,
		}

		// Yahoo reports a zero for metrics it has no data for; treat those
		// as missing so renderers fall back to "N/A".
		if eq.MarketCap > 0 {
			mc := eq.MarketCap
			profile.MarketCap = &mc
		}
		if eq.TrailingPE > 0 {
			pe := eq.TrailingPE
			profile.TrailingPE = &pe
		}
		if eq.ForwardPE > 0 {
			fpe := eq.ForwardPE
			profile.ForwardPE = &fpe
		}
		if eq.PriceToBook > 0 {
			pb := eq.PriceToBook
			profile.PriceToBook = &pb
		}
		if eq.EpsTrailingTwelveMonths != 0 {
			eps := eq.EpsTrailingTwelveMonths
			profile.EPS = &eps
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	yf.cache.Set("yahoo", "profile", symbol, profile)

	return profile, nil
}
