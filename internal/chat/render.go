package chat

import (
	"fmt"
	"strings"

	"github.com/avikram/finnavigator/internal/models"
)

// Disclaimer is appended to every assistant turn.
const Disclaimer = "Disclaimer: This information is for educational purposes only and not financial advice. Please consult a qualified financial advisor before making any investment decisions."

// FallbackEmptyReply is rendered when the orchestrator returns nothing.
const FallbackEmptyReply = "I could not determine how to help with that. Try asking about a specific stock, e.g. \"technical analysis for AAPL\"."

// naIfEmpty keeps every declared field visible in the rendered output.
func naIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// RenderTechnical formats a technical report as an HTML block: indicator
// narrative, recommendation badges and price targets.
func RenderTechnical(report *models.TechnicalReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h3>Technical Analysis: %s</h3>\n", naIfEmpty(report.Symbol))
	fmt.Fprintf(&b, "<p>Current Price: %s</p>\n", money(report.Current))

	b.WriteString("<ul>\n")
	for _, signal := range report.Signals {
		fmt.Fprintf(&b, "<li>%s</li>\n", signal)
	}
	b.WriteString("</ul>\n")

	b.WriteString("<p>Recommendation: ")
	b.WriteString(badge("Buy", report.Recommendation.Buy))
	b.WriteString(" ")
	b.WriteString(badge("Hold", report.Recommendation.Hold))
	b.WriteString(" ")
	b.WriteString(badge("Sell", report.Recommendation.Sell))
	b.WriteString("</p>\n")

	fmt.Fprintf(&b, "<p>Support: %s | Resistance: %s</p>", money(report.Support), money(report.Resistance))

	return b.String()
}

// badge renders one recommendation category. The style key is the
// lower-cased category name.
func badge(category string, percent int) string {
	return fmt.Sprintf(`<span class="badge badge-%s">%s: %d%%</span>`, strings.ToLower(category), category, percent)
}

// RenderFundamental formats a fundamental report. The verdict style key is
// the lower-cased, space-stripped verdict name.
func RenderFundamental(report *models.FundamentalReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h3>Fundamental Analysis: %s (%s)</h3>\n", naIfEmpty(report.CompanyName), naIfEmpty(report.Symbol))

	b.WriteString("<p><b>Positives:</b></p>\n")
	b.WriteString(bulletList(report.Positives, "No specific positive indicators found."))

	b.WriteString("<p><b>Points of Caution:</b></p>\n")
	b.WriteString(bulletList(report.Cautions, "No specific points of caution found."))

	verdictKey := strings.ToLower(strings.ReplaceAll(report.Verdict, " ", ""))
	fmt.Fprintf(&b, `<p>Final Verdict: <span class="verdict-%s">%s</span></p>`, verdictKey, naIfEmpty(report.Verdict))

	return b.String()
}

func bulletList(items []string, placeholder string) string {
	if len(items) == 0 {
		return fmt.Sprintf("<p>• %s</p>\n", placeholder)
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "<p>• %s</p>\n", item)
	}
	return b.String()
}

// RenderNews formats a news report. When no summary could be produced the
// output carries only the search link with an explanatory note — never a
// fabricated summary.
func RenderNews(report *models.NewsReport, summary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h3>Latest News: %s</h3>\n", naIfEmpty(report.CompanyName))

	if strings.TrimSpace(summary) != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", summary)
	} else {
		b.WriteString("<p>The full article could not be retrieved, but you can read the latest coverage at the link below.</p>\n")
	}

	fmt.Fprintf(&b, `<p><a href="%s">More news on Google News</a></p>`, report.SearchLink)

	return b.String()
}

// RenderError wraps a tool failure message as an ordinary assistant turn.
func RenderError(message string) string {
	return fmt.Sprintf("<p><b>Sorry, something went wrong:</b> %s</p>", naIfEmpty(message))
}
