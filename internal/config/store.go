package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Preferences are the non-secret settings persisted between runs.
// Credentials are deliberately excluded; they live only in the session.
type Preferences struct {
	LLMProvider  string `json:"llm_provider,omitempty"`
	LLMModel     string `json:"llm_model,omitempty"`
	NewsLanguage string `json:"news_language,omitempty"`
	NewsCountry  string `json:"news_country,omitempty"`
}

// Store reads and writes the preferences file safely.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore creates a store for the preferences file under the project dir.
func NewStore(cfg *Config) *Store {
	return &Store{path: filepath.Join(cfg.ProjectDir, "preferences.json")}
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Load reads saved preferences. A missing file is not an error; it returns
// empty preferences.
func (s *Store) Load() (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var prefs Preferences
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return prefs, nil
}

// Save writes preferences, creating the directory when needed.
func (s *Store) Save(prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Apply overlays saved preferences onto a config. Environment-derived
// values win: only fields the config left empty are filled in.
func (c *Config) Apply(prefs Preferences) {
	if c.LLMProvider == "" && prefs.LLMProvider != "" {
		c.LLMProvider = prefs.LLMProvider
	}
	if c.LLMModel == "" && prefs.LLMModel != "" {
		c.LLMModel = prefs.LLMModel
	}
	if prefs.NewsLanguage != "" {
		c.NewsLanguage = prefs.NewsLanguage
	}
	if prefs.NewsCountry != "" {
		c.NewsCountry = prefs.NewsCountry
	}
}
