package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	t_utils "github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/avikram/finnavigator/internal/models"
)

// symbolParam is the shared parameter schema for the symbol-keyed tools.
func symbolParam() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"symbol": {
			Type:     "string",
			Desc:     "The stock ticker symbol, e.g. AAPL or RELIANCE.NS",
			Required: true,
		},
	}
}

// NewTechnicalTool exposes the technical scorecard to the agent.
func NewTechnicalTool(suite *Suite) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "analyze_technical",
			Desc: "Run technical analysis on a stock: moving averages, RSI, MACD, support/resistance and a buy/hold/sell recommendation",
			ParamsOneOf: schema.NewParamsOneOfByParams(symbolParam()),
		},
		func(ctx context.Context, input models.SymbolInput) (*models.ToolOutput, error) {
			return toToolOutput(suite.Technical(ctx, input.Symbol))
		},
	)
}

// NewFundamentalTool exposes the valuation scorecard to the agent.
func NewFundamentalTool(suite *Suite) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "analyze_fundamental",
			Desc: "Run fundamental analysis on a stock: valuation ratios, strengths, cautions and a verdict",
			ParamsOneOf: schema.NewParamsOneOfByParams(symbolParam()),
		},
		func(ctx context.Context, input models.SymbolInput) (*models.ToolOutput, error) {
			return toToolOutput(suite.Fundamental(ctx, input.Symbol))
		},
	)
}

// NewNewsTool exposes the news lookup to the agent.
func NewNewsTool(suite *Suite) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_stock_news",
			Desc: "Fetch the latest news article about a stock from Google News",
			ParamsOneOf: schema.NewParamsOneOfByParams(symbolParam()),
		},
		func(ctx context.Context, input models.SymbolInput) (*models.ToolOutput, error) {
			return toToolOutput(suite.News(ctx, input.Symbol))
		},
	)
}

// AgentTools returns the full tool set wired to one suite.
func AgentTools(suite *Suite) []tool.BaseTool {
	return []tool.BaseTool{
		NewTechnicalTool(suite),
		NewFundamentalTool(suite),
		NewNewsTool(suite),
	}
}

// toToolOutput serializes an analysis envelope for model consumption.
func toToolOutput(result *models.AnalysisResult) (*models.ToolOutput, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize analysis result: %w", err)
	}
	return &models.ToolOutput{Result: string(data)}, nil
}
