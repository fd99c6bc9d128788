package session

import (
	"github.com/avikram/finnavigator/internal/models"
)

// Tab identifies the active screen of the UI.
type Tab string

const (
	TabChat    Tab = "chat"
	TabPlanner Tab = "planner"
)

// Session holds the per-user conversation state: provider selection,
// credential, active tab and the ordered chat history. One instance per
// user; it is never shared between concurrent turns.
type Session struct {
	Provider   string
	Credential string
	Tab        Tab

	history []models.ChatTurn
}

func New(provider, credential string) *Session {
	return &Session{
		Provider:   provider,
		Credential: credential,
		Tab:        TabChat,
	}
}

// Append adds a turn to the history. History is append-only; turns are
// never edited or removed once recorded.
func (s *Session) Append(turn models.ChatTurn) {
	s.history = append(s.history, turn)
}

// Turns returns a copy of the history so callers cannot mutate it.
func (s *Session) Turns() []models.ChatTurn {
	out := make([]models.ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Len reports the number of recorded turns.
func (s *Session) Len() int {
	return len(s.history)
}

// SetProvider switches the language-model provider and credential. The
// caller is responsible for re-creating its model client afterwards.
func (s *Session) SetProvider(provider, credential string) {
	s.Provider = provider
	s.Credential = credential
}
