package models

import "fmt"

// AnalysisStatus tags the envelope every analysis routine returns.
type AnalysisStatus string

const (
	StatusSuccess AnalysisStatus = "success"
	StatusError   AnalysisStatus = "error"
)

// ArticleUnavailable is the sentinel placed in NewsReport.Article when the
// top search result could not be scraped.
const ArticleUnavailable = "Could not scrape the full article content."

// Distribution is a Buy/Hold/Sell recommendation split in whole percent.
// The three values always sum to 100.
type Distribution struct {
	Buy  int `json:"buy"`
	Hold int `json:"hold"`
	Sell int `json:"sell"`
}

func (d Distribution) Total() int {
	return d.Buy + d.Hold + d.Sell
}

// TechnicalReport is the payload of a successful technical analysis.
type TechnicalReport struct {
	Symbol         string       `json:"symbol"`
	Signals        []string     `json:"signals"`
	Score          int          `json:"score"`
	Recommendation Distribution `json:"recommendation_percent"`
	Support        float64      `json:"support"`
	Resistance     float64      `json:"resistance"`
	Current        float64      `json:"current"`
	Chart          []ChartPoint `json:"chart,omitempty"`
}

// FundamentalReport is the payload of a successful fundamental analysis.
// Verdict is one of: Weak, Average, Strong, Very Strong.
type FundamentalReport struct {
	Symbol      string   `json:"symbol"`
	CompanyName string   `json:"company_name"`
	Positives   []string `json:"positive_points"`
	Cautions    []string `json:"caution_points"`
	Score       int      `json:"score"`
	Verdict     string   `json:"final_verdict"`
}

// NewsReport is the payload of a successful news lookup. Article holds the
// scraped text of the top result, or ArticleUnavailable.
type NewsReport struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name"`
	SearchLink  string `json:"google_news_link"`
	Article     string `json:"scraped_text"`
}

// HasArticle reports whether a usable article body was retrieved.
func (r *NewsReport) HasArticle() bool {
	return r.Article != "" && r.Article != ArticleUnavailable
}

// AnalysisResult is the uniform envelope returned by every member of the
// analysis tool set. Exactly one payload pointer is set on success; Message
// is set when Status is StatusError.
type AnalysisResult struct {
	Status      AnalysisStatus     `json:"status"`
	Message     string             `json:"message,omitempty"`
	Technical   *TechnicalReport   `json:"technical,omitempty"`
	Fundamental *FundamentalReport `json:"fundamental,omitempty"`
	News        *NewsReport        `json:"news,omitempty"`
}

func (r *AnalysisResult) OK() bool {
	return r.Status == StatusSuccess
}

func TechnicalSuccess(report *TechnicalReport) *AnalysisResult {
	return &AnalysisResult{Status: StatusSuccess, Technical: report}
}

func FundamentalSuccess(report *FundamentalReport) *AnalysisResult {
	return &AnalysisResult{Status: StatusSuccess, Fundamental: report}
}

func NewsSuccess(report *NewsReport) *AnalysisResult {
	return &AnalysisResult{Status: StatusSuccess, News: report}
}

func AnalysisFailure(format string, args ...any) *AnalysisResult {
	return &AnalysisResult{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}
