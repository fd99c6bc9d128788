package dataflows

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/avikram/finnavigator/internal/config"
)

// articleBudget is the fixed character budget for scraped article text.
const articleBudget = 2500

// GoogleNewsScraper resolves the top Google News article for a query.
type GoogleNewsScraper struct {
	client   *resty.Client
	cache    *CacheManager
	baseURL  string
	language string
	country  string
}

// NewGoogleNewsScraper creates a scraper with browser-like headers and a
// short article-fetch timeout.
func NewGoogleNewsScraper(cfg *config.Config) *GoogleNewsScraper {
	cacheDir := filepath.Join(cfg.DataCacheDir, "google_news")
	cache := NewCacheManager(cacheDir, 30*time.Minute, cfg.CacheEnabled) // 30 minute cache for news

	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	return &GoogleNewsScraper{
		client:   client,
		cache:    cache,
		baseURL:  "https://news.google.com",
		language: cfg.NewsLanguage,
		country:  cfg.NewsCountry,
	}
}

// SearchURL builds the canonical Google News search link for a query.
func (gns *GoogleNewsScraper) SearchURL(query string) string {
	langBase := strings.Split(gns.language, "-")[0]
	return fmt.Sprintf("%s/search?q=%s&hl=%s&gl=%s&ceid=%s:%s",
		gns.baseURL, url.QueryEscape(query), gns.language, gns.country, gns.country, langBase)
}

// TopArticleText fetches the search page, follows the first result link and
// returns its extracted paragraph text, truncated to the article budget.
func (gns *GoogleNewsScraper) TopArticleText(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("search query cannot be empty")
	}

	var cached string
	if gns.cache.Get("top_article", "query", query, &cached) {
		return cached, nil
	}

	articleURL, err := gns.topArticleURL(ctx, query)
	if err != nil {
		return "", err
	}

	text, err := gns.fetchArticleText(ctx, articleURL)
	if err != nil {
		return "", err
	}

	gns.cache.Set("top_article", "query", query, text)

	return text, nil
}

// topArticleURL resolves the href of the first result on the search page.
func (gns *GoogleNewsScraper) topArticleURL(ctx context.Context, query string) (string, error) {
	resp, err := gns.client.R().SetContext(ctx).Get(gns.SearchURL(query))
	if err != nil {
		return "", fmt.Errorf("failed to fetch Google News: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("HTTP error %d when fetching Google News", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	href, exists := doc.Find("a.JtKRv").First().Attr("href")
	if !exists || href == "" {
		return "", fmt.Errorf("no article link found for query %q", query)
	}

	return gns.resolveLink(href), nil
}

// fetchArticleText downloads an article page and joins its paragraph text.
// Article pages get a short dedicated timeout so a slow publisher cannot
// stall the whole turn.
func (gns *GoogleNewsScraper) fetchArticleText(ctx context.Context, articleURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := gns.client.R().SetContext(ctx).Get(articleURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("HTTP error %d when fetching article", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", fmt.Errorf("failed to parse article HTML: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && !isNavigationText(text) {
			parts = append(parts, text)
		}
	})

	fullText := strings.Join(parts, " ")
	if fullText == "" {
		return "", fmt.Errorf("article at %s has no paragraph text", articleURL)
	}

	if len(fullText) > articleBudget {
		fullText = fullText[:articleBudget] + "..."
	}

	return fullText, nil
}

// resolveLink turns Google News relative links into absolute URLs.
func (gns *GoogleNewsScraper) resolveLink(href string) string {
	if strings.HasPrefix(href, "./") {
		return gns.baseURL + href[1:]
	}
	if strings.HasPrefix(href, "/") {
		return gns.baseURL + href
	}
	return href
}

// isNavigationText filters boilerplate that is not article body.
func isNavigationText(text string) bool {
	text = strings.ToLower(text)

	navigationPatterns := []string{
		"subscribe", "sign in", "cookie", "advertisement",
		"read more", "continue reading", "related articles",
		"you may also like", "recommended", "trending",
	}

	for _, pattern := range navigationPatterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}

	return false
}
