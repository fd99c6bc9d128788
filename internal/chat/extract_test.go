package chat

import (
	"testing"
)

func TestExtractTicker(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
		found     bool
	}{
		{"plain symbol", "recommendation for AAPL", "AAPL", true},
		{"exchange qualified", "technical analysis of RELIANCE.NS please", "RELIANCE.NS", true},
		{"exchange qualified beats shorter", "compare TCS with RELIANCE.NS", "RELIANCE.NS", true},
		{"shortest wins", "MSFT versus GOOGL today", "MSFT", true},
		{"trailing punctuation", "what about TSLA?", "TSLA", true},
		{"excluded word only", "I want an ANALYSIS", "", false},
		{"lowercase ignored", "tell me about apple", "", false},
		{"mixed case ignored", "tell me about Apple", "", false},
		{"no tokens", "how are you", "", false},
		{"hyphenated class share", "thoughts on BRK-B", "BRK-B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractTicker(tt.utterance)
			if found != tt.found {
				t.Fatalf("ExtractTicker(%q) found = %v, want %v", tt.utterance, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("ExtractTicker(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestExtractTickerFirstExchangeQualifiedWins(t *testing.T) {
	got, found := ExtractTicker("compare RELIANCE.NS with INFY.NS")
	if !found || got != "RELIANCE.NS" {
		t.Errorf("got %q/%v, want RELIANCE.NS", got, found)
	}
}
