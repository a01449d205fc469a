package store

import "sync"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one unit of conversation, either a user query or an assistant answer.
// Turn text is always stored in the pivot language.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the ordered, append-only history of one logical conversation.
// askMu serializes whole asks on the same session so concurrent requests
// cannot interleave their turn pairs; mu guards the turn slice itself.
type Session struct {
	ID string `json:"id"`

	askMu sync.Mutex
	mu    sync.RWMutex
	turns []Turn
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// Lock takes the per-session ask mutex. Callers hold it for the whole ask so
// the history read and the turn append are one atomic unit.
func (s *Session) Lock() {
	s.askMu.Lock()
}

func (s *Session) Unlock() {
	s.askMu.Unlock()
}

// Turns returns a copy of the history in insertion order.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Append adds one turn to the history. Turns are never removed or reordered.
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// Len returns the number of turns recorded so far.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}
