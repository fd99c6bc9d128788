package chat

import (
	"strings"
	"testing"

	"github.com/avikram/finnavigator/internal/models"
)

func TestRenderTechnical(t *testing.T) {
	report := &models.TechnicalReport{
		Symbol:         "AAPL",
		Signals:        []string{"Golden Cross (SMA50 above SMA200): bullish long-term trend"},
		Score:          3,
		Recommendation: models.Distribution{Buy: 70, Hold: 25, Sell: 5},
		Support:        150.25,
		Resistance:     180.5,
		Current:        172.1,
	}

	out := RenderTechnical(report)

	for _, want := range []string{
		"AAPL",
		`<span class="badge badge-buy">Buy: 70%</span>`,
		`<span class="badge badge-hold">Hold: 25%</span>`,
		`<span class="badge badge-sell">Sell: 5%</span>`,
		"\u20b9150.25",
		"\u20b9180.50",
		"Golden Cross",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFundamentalVerdictKey(t *testing.T) {
	report := &models.FundamentalReport{
		Symbol:      "AAPL",
		CompanyName: "Apple Inc.",
		Positives:   []string{"P/E ratio of 18.00 suggests reasonable valuation"},
		Verdict:     "Very Strong",
	}

	out := RenderFundamental(report)

	if !strings.Contains(out, `<span class="verdict-verystrong">Very Strong</span>`) {
		t.Errorf("verdict span missing or mis-keyed:\n%s", out)
	}
	if !strings.Contains(out, "\u2022 No specific points of caution found.") {
		t.Errorf("empty cautions should render the placeholder bullet:\n%s", out)
	}
}

func TestRenderFundamentalPlaceholders(t *testing.T) {
	report := &models.FundamentalReport{Symbol: "XYZ", CompanyName: "", Verdict: "Weak"}

	out := RenderFundamental(report)

	if !strings.Contains(out, "N/A") {
		t.Errorf("empty company name should render as N/A:\n%s", out)
	}
	if !strings.Contains(out, "\u2022 No specific positive indicators found.") {
		t.Errorf("empty positives should render the placeholder bullet:\n%s", out)
	}
}

func TestRenderNewsWithSummary(t *testing.T) {
	report := &models.NewsReport{
		CompanyName: "Apple Inc.",
		SearchLink:  "https://news.google.com/search?q=Apple",
		Article:     "long text",
	}

	out := RenderNews(report, "Apple shares rallied on strong earnings.")

	if !strings.Contains(out, "Apple shares rallied") {
		t.Errorf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, report.SearchLink) {
		t.Errorf("search link missing:\n%s", out)
	}
}

func TestRenderNewsWithoutSummary(t *testing.T) {
	report := &models.NewsReport{
		CompanyName: "Apple Inc.",
		SearchLink:  "https://news.google.com/search?q=Apple",
		Article:     models.ArticleUnavailable,
	}

	out := RenderNews(report, "")

	if !strings.Contains(out, report.SearchLink) {
		t.Errorf("search link must always be present:\n%s", out)
	}
	if !strings.Contains(out, "could not be retrieved") {
		t.Errorf("explanatory note missing:\n%s", out)
	}
}
