package config

import (
	"path/filepath"
	"testing"
)

func storeAt(dir string) *Store {
	return &Store{path: filepath.Join(dir, "preferences.json")}
}

func TestStoreRoundTrip(t *testing.T) {
	store := storeAt(t.TempDir())

	prefs := Preferences{
		LLMProvider:  "groq",
		NewsLanguage: "en-US",
		NewsCountry:  "US",
	}
	if err := store.Save(prefs); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != prefs {
		t.Errorf("Load() = %+v, want %+v", got, prefs)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := storeAt(t.TempDir())

	prefs, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if prefs != (Preferences{}) {
		t.Errorf("missing file should yield empty preferences, got %+v", prefs)
	}
}

func TestApplyKeepsEnvValues(t *testing.T) {
	cfg := &Config{LLMProvider: "openai", NewsLanguage: "en-IN", NewsCountry: "IN"}

	cfg.Apply(Preferences{
		LLMProvider:  "groq",
		LLMModel:     "llama3-8b-8192",
		NewsLanguage: "en-US",
		NewsCountry:  "US",
	})

	if cfg.LLMProvider != "openai" {
		t.Errorf("provider = %q, environment value must win", cfg.LLMProvider)
	}
	if cfg.LLMModel != "llama3-8b-8192" {
		t.Errorf("model = %q, empty field should take the preference", cfg.LLMModel)
	}
	if cfg.NewsLanguage != "en-US" || cfg.NewsCountry != "US" {
		t.Errorf("locale = %s/%s, preferences should override defaults", cfg.NewsLanguage, cfg.NewsCountry)
	}
}
