package dataflows

import (
	"context"
	"errors"
	"time"

	lpconfig "github.com/longportapp/openapi-go/config"
	lpquote "github.com/longportapp/openapi-go/quote"
)

// LongportConfig carries the Longport OpenAPI credentials.
type LongportConfig struct {
	AppKey      string
	AppSecret   string
	AccessToken string
}

// LongportClient serves exchange-suffixed Asian symbols that Yahoo covers
// poorly. It satisfies MarketDataProvider so tools can be pointed at either
// source through configuration.
type LongportClient struct {
	quoteCtx *lpquote.QuoteContext
}

func NewLongportClient(cfg LongportConfig) (*LongportClient, error) {
	if cfg.AppKey == "" || cfg.AppSecret == "" || cfg.AccessToken == "" {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(cfg.AppKey, cfg.AppSecret, cfg.AccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := lpquote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{
		quoteCtx: quoteContext,
	}, nil
}

// GetDailyBars returns up to days daily candlesticks for a symbol.
func (lpc *LongportClient) GetDailyBars(ctx context.Context, symbol string, days int) ([]*Bar, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}

	sticks, err := lpc.quoteCtx.Candlesticks(ctx, NormalizeSymbol(symbol), lpquote.PeriodDay, int32(days), lpquote.AdjustTypeNo)
	if err != nil {
		return nil, err
	}
	if len(sticks) == 0 {
		return nil, ErrSymbolNotFound
	}

	bars := make([]*Bar, 0, len(sticks))
	for _, stick := range sticks {
		bars = append(bars, &Bar{
			Symbol:    symbol,
			Date:      time.Unix(stick.Timestamp, 0),
			Open:      *stick.Open,
			High:      *stick.High,
			Low:       *stick.Low,
			Close:     *stick.Close,
			AdjClose:  *stick.Close,
			Volume:    stick.Volume,
			Timestamp: time.Now(),
		})
	}

	return bars, nil
}

// GetQuote returns the most recent daily bar for a symbol.
func (lpc *LongportClient) GetQuote(ctx context.Context, symbol string) (*Bar, error) {
	bars, err := lpc.GetDailyBars(ctx, symbol, 2)
	if err != nil {
		return nil, err
	}
	return bars[len(bars)-1], nil
}

// GetCompanyProfile returns descriptive metadata from the static info
// endpoint. Longport does not expose valuation ratios, so those fields
// remain nil and render as "N/A" downstream.
func (lpc *LongportClient) GetCompanyProfile(ctx context.Context, symbol string) (*CompanyProfile, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}

	symbol = NormalizeSymbol(symbol)
	infos, err := lpc.quoteCtx.StaticInfo(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 || infos[0] == nil {
		return nil, ErrSymbolNotFound
	}

	info := infos[0]
	name := info.NameEn
	if name == "" {
		name = symbol
	}

	return &CompanyProfile{
		Symbol:   symbol,
		Name:     name,
		Exchange: info.Exchange,
		Currency: info.Currency,
	}, nil
}
