package tools

import (
	"context"
	"fmt"
	"log"

	"github.com/avikram/finnavigator/internal/dataflows"
	"github.com/avikram/finnavigator/internal/models"
)

// News resolves the company's name, searches Google News for it and scrapes
// the top article. A scraping failure is not an error: the report still
// carries the search link, with ArticleUnavailable in place of the text.
func (s *Suite) News(ctx context.Context, symbol string) *models.AnalysisResult {
	symbol = dataflows.NormalizeSymbol(symbol)
	if err := dataflows.ValidateSymbol(symbol); err != nil {
		return models.AnalysisFailure("invalid symbol %q: %v", symbol, err)
	}

	name := s.companyName(ctx, symbol)
	query := fmt.Sprintf("%s stock news", name)

	report := &models.NewsReport{
		Symbol:      symbol,
		CompanyName: name,
		SearchLink:  s.scraper.SearchURL(query),
	}

	article, err := s.scraper.TopArticleText(ctx, query)
	if err != nil {
		log.Printf("News scraping failed for %s: %v", symbol, err)
		report.Article = models.ArticleUnavailable
	} else {
		report.Article = article
	}

	return models.NewsSuccess(report)
}
