package dataflows

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSymbolNotFound reports that the upstream data source has no market
// data for a symbol. Analysis tools convert it into a rendered error turn.
var ErrSymbolNotFound = errors.New("symbol not found")

// Bar is one daily OHLCV bar.
type Bar struct {
	Symbol    string          `json:"symbol"`
	Date      time.Time       `json:"date"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	AdjClose  decimal.Decimal `json:"adj_close"`
	Volume    int64           `json:"volume"`
	Timestamp time.Time       `json:"timestamp"`
}

// CompanyProfile carries descriptive metadata and valuation ratios for a
// symbol. Ratio fields are nil when the upstream source does not report
// them; renderers must show "N/A" for nil fields rather than omitting them.
type CompanyProfile struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Sector    string `json:"sector,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	Currency  string `json:"currency,omitempty"`
	MarketCap *int64 `json:"market_cap,omitempty"`

	TrailingPE     *float64 `json:"trailing_pe,omitempty"`
	ForwardPE      *float64 `json:"forward_pe,omitempty"`
	PEGRatio       *float64 `json:"peg_ratio,omitempty"`
	PriceToBook    *float64 `json:"price_to_book,omitempty"`
	PriceToSales   *float64 `json:"price_to_sales,omitempty"`
	ReturnOnEquity *float64 `json:"return_on_equity,omitempty"`
	DebtToEquity   *float64 `json:"debt_to_equity,omitempty"`
	ProfitMargin   *float64 `json:"profit_margin,omitempty"`
	EPS            *float64 `json:"eps,omitempty"`
}

// MarketDataProvider supplies quotes, daily bars and company metadata.
type MarketDataProvider interface {
	GetQuote(ctx context.Context, symbol string) (*Bar, error)
	GetDailyBars(ctx context.Context, symbol string, days int) ([]*Bar, error)
	GetCompanyProfile(ctx context.Context, symbol string) (*CompanyProfile, error)
}

// NewsScraper resolves the top news article for a free-text query.
type NewsScraper interface {
	// SearchURL returns the canonical news-search link for a query. It is
	// always constructible, even when scraping later fails.
	SearchURL(query string) string
	// TopArticleText fetches the search page, follows the first result and
	// returns its extracted paragraph text. The text is truncated to a fixed
	// budget; an error means the article body was not retrievable.
	TopArticleText(ctx context.Context, query string) (string, error)
}
