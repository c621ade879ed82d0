// Package memory keeps a bounded, concurrency-safe conversation history.
package memory

import (
	"strings"
	"sync"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultMaxTurns bounds the history when no limit is given
const DefaultMaxTurns = 10

// History is a FIFO of conversation turns. When full, the oldest turn is
// evicted.
type History struct {
	mu    sync.Mutex
	turns []types.ConversationTurn
	max   int
}

// New creates a history holding at most maxTurns turns
func New(maxTurns int) *History {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &History{max: maxTurns}
}

// Add appends a turn, evicting the oldest when the history is full. Blank
// text is ignored.
func (h *History) Add(role types.Role, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns = append(h.turns, types.ConversationTurn{Role: role, Text: text})
	if over := len(h.turns) - h.max; over > 0 {
		h.turns = append(h.turns[:0:0], h.turns[over:]...)
	}
}

// Turns returns a copy of the history, oldest first
func (h *History) Turns() []types.ConversationTurn {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]types.ConversationTurn(nil), h.turns...)
}

// Len returns the number of stored turns
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Clear drops every turn
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}

// Transcript renders the history as "User: ..." / "Assistant: ..." lines
func (h *History) Transcript() string {
	turns := h.Turns()
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch t.Role {
		case types.RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
