package utils

import (
	"errors"
	"testing"
)

func TestExtractObject(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"strategy_summary\": \"steady growth\", \"phases\": []}\n```\nGood luck!"

	var plan struct {
		Summary string `json:"strategy_summary"`
	}
	if err := ExtractObject(text, &plan); err != nil {
		t.Fatalf("ExtractObject failed: %v", err)
	}
	if plan.Summary != "steady growth" {
		t.Errorf("Expected summary %q, got %q", "steady growth", plan.Summary)
	}
}

func TestExtractObjectNoJSON(t *testing.T) {
	var out map[string]any
	err := ExtractObject("just a conversational answer, nothing structured", &out)
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("Expected ErrNoJSON, got %v", err)
	}
}

func TestExtractObjectMalformed(t *testing.T) {
	var out map[string]any
	err := ExtractObject("prefix {not valid json] suffix}", &out)
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
	if errors.Is(err, ErrNoJSON) {
		t.Error("Malformed JSON should not be reported as absent JSON")
	}
}

func TestExtractArray(t *testing.T) {
	text := "Recommendations: [{\"fund_category\": \"Equity Large Cap\"}] as requested."

	var recs []struct {
		Category string `json:"fund_category"`
	}
	if err := ExtractArray(text, &recs); err != nil {
		t.Fatalf("ExtractArray failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Category != "Equity Large Cap" {
		t.Errorf("Unexpected recommendations: %+v", recs)
	}
}
