package dataflows

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func newTestScraper(t *testing.T, baseURL string) *GoogleNewsScraper {
	t.Helper()

	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &GoogleNewsScraper{
		client:   client,
		cache:    NewCacheManager(t.TempDir(), time.Minute, false),
		baseURL:  baseURL,
		language: "en-IN",
		country:  "IN",
	}
}

func TestSearchURL(t *testing.T) {
	scraper := newTestScraper(t, "https://news.google.com")

	got := scraper.SearchURL("Apple Inc. stock news")
	want := "https://news.google.com/search?q=Apple+Inc.+stock+news&hl=en-IN&gl=IN&ceid=IN:en"
	if got != want {
		t.Errorf("SearchURL() = %q, want %q", got, want)
	}
}

func TestTopArticleText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a class="JtKRv" href="./articles/top-story">Top story</a>
			<a class="JtKRv" href="./articles/second-story">Second story</a>
		</body></html>`)
	})
	mux.HandleFunc("/articles/top-story", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<p>Subscribe to our newsletter for updates.</p>
			<p>Shares rallied after the earnings call.</p>
			<p>Analysts raised their price targets.</p>
		</body></html>`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	scraper := newTestScraper(t, server.URL)

	text, err := scraper.TopArticleText(context.Background(), "ACME stock news")
	if err != nil {
		t.Fatalf("TopArticleText() error: %v", err)
	}

	want := "Shares rallied after the earnings call. Analysts raised their price targets."
	if text != want {
		t.Errorf("TopArticleText() = %q, want %q", text, want)
	}
}

func TestTopArticleTextTruncation(t *testing.T) {
	longParagraph := strings.Repeat("x", 3000)

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><a class="JtKRv" href="./articles/long">Long read</a></body></html>`)
	})
	mux.HandleFunc("/articles/long", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><p>%s</p></body></html>`, longParagraph)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	scraper := newTestScraper(t, server.URL)

	text, err := scraper.TopArticleText(context.Background(), "long read")
	if err != nil {
		t.Fatalf("TopArticleText() error: %v", err)
	}

	if len(text) != articleBudget+3 {
		t.Errorf("truncated length = %d, want %d", len(text), articleBudget+3)
	}
	if !strings.HasSuffix(text, "...") {
		t.Errorf("truncated text should end with ellipsis, got %q", text[len(text)-10:])
	}
}

func TestTopArticleTextNoResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>No results found</p></body></html>`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	scraper := newTestScraper(t, server.URL)

	if _, err := scraper.TopArticleText(context.Background(), "no such company"); err == nil {
		t.Fatal("expected error when no article link is present")
	}
}

func TestTopArticleTextEmptyQuery(t *testing.T) {
	scraper := newTestScraper(t, "https://news.google.com")

	if _, err := scraper.TopArticleText(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestResolveLink(t *testing.T) {
	scraper := newTestScraper(t, "https://news.google.com")

	tests := []struct {
		href string
		want string
	}{
		{"./articles/abc", "https://news.google.com/articles/abc"},
		{"/articles/abc", "https://news.google.com/articles/abc"},
		{"https://example.com/story", "https://example.com/story"},
	}

	for _, tt := range tests {
		if got := scraper.resolveLink(tt.href); got != tt.want {
			t.Errorf("resolveLink(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}
