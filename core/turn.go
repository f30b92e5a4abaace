package core

import (
	"time"

	"github.com/google/uuid"
)

// Conversation roles. Only user and assistant turns are recorded by the
// dispatcher; collaborator payloads (sentiment, weather) never enter history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a conversation history. Turns are append-only: once
// recorded they are never edited in place.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a turn with a fresh id and UTC timestamp.
func NewTurn(role, content string) Turn {
	return Turn{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewID generates a unique identifier for turns and sessions.
func NewID() string { return uuid.NewString() }
