package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewChatModelUnsupportedProvider(t *testing.T) {
	_, err := NewChatModel(context.Background(), "notaprovider", "key", "")
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("error = %v, want ErrUnsupportedProvider", err)
	}
}

func TestNewChatModelMissingCredential(t *testing.T) {
	for _, provider := range []string{"gemini", "deepseek"} {
		_, err := NewChatModel(context.Background(), provider, "  ", "")
		if !errors.Is(err, ErrMissingCredential) {
			t.Errorf("provider %s: error = %v, want ErrMissingCredential", provider, err)
		}
	}
}

func TestSupportedProviders(t *testing.T) {
	providers := SupportedProviders()

	want := []string{"gemini", "openai", "groq", "huggingface", "cohere", "deepseek"}
	if len(providers) != len(want) {
		t.Fatalf("providers = %v, want %d entries", providers, len(want))
	}

	seen := make(map[string]bool, len(providers))
	for _, p := range providers {
		seen[p] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("provider %s missing from %v", w, providers)
		}
	}
}

func TestLoadPrompt(t *testing.T) {
	prompt, err := LoadPrompt("assistant")
	if err != nil {
		t.Fatalf("LoadPrompt() error: %v", err)
	}
	if !strings.Contains(prompt, "financial assistant") {
		t.Errorf("assistant prompt content unexpected:\n%s", prompt)
	}
}

func TestLoadPromptWithContext(t *testing.T) {
	prompt, err := LoadPromptWithContext("summarize", map[string]string{
		"Company": "Apple Inc.",
		"Article": "Some article text.",
	})
	if err != nil {
		t.Fatalf("LoadPromptWithContext() error: %v", err)
	}
	if !strings.Contains(prompt, "Apple Inc.") || !strings.Contains(prompt, "Some article text.") {
		t.Errorf("placeholders not substituted:\n%s", prompt)
	}
	if strings.Contains(prompt, "{{.Company}}") {
		t.Error("unsubstituted placeholder remains")
	}
}

func TestLoadPromptMissing(t *testing.T) {
	if _, err := LoadPrompt("no-such-prompt"); err == nil {
		t.Fatal("expected error for missing prompt")
	}
}
