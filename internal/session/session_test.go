package session

import (
	"testing"

	"github.com/avikram/finnavigator/internal/models"
)

func TestAppendAndTurns(t *testing.T) {
	sess := New("gemini", "key-123")

	sess.Append(models.ChatTurn{Role: models.RoleUser, Content: "hello"})
	sess.Append(models.ChatTurn{Role: models.RoleAssistant, Content: "hi there"})

	if sess.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", sess.Len())
	}

	turns := sess.Turns()
	if turns[0].Role != models.RoleUser || turns[1].Role != models.RoleAssistant {
		t.Errorf("unexpected roles: %q, %q", turns[0].Role, turns[1].Role)
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	sess := New("gemini", "key-123")
	sess.Append(models.ChatTurn{Role: models.RoleUser, Content: "original"})

	turns := sess.Turns()
	turns[0].Content = "mutated"

	if got := sess.Turns()[0].Content; got != "original" {
		t.Errorf("history mutated through copy: %q", got)
	}
}

func TestSetProvider(t *testing.T) {
	sess := New("gemini", "old-key")
	sess.Append(models.ChatTurn{Role: models.RoleUser, Content: "hello"})

	sess.SetProvider("openai", "new-key")

	if sess.Provider != "openai" || sess.Credential != "new-key" {
		t.Errorf("provider switch not applied: %s/%s", sess.Provider, sess.Credential)
	}
	if sess.Len() != 1 {
		t.Error("provider switch must not clear history")
	}
}
