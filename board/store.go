package board

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Tactic is a named snapshot of the full board at save time. Entries are
// never mutated after creation; the list only grows and shrinks.
type Tactic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     State  `json:"state"`
	CreatedAt string `json:"createdAt"`
}

// Store holds the single authoritative board state and the saved tactics
// list. All relay mutation funnels through it; nothing here survives the
// process.
type Store struct {
	mu      sync.Mutex
	state   State
	tactics []Tactic
}

func NewStore() *Store {
	return &Store{
		state:   DefaultState(),
		tactics: []Tactic{},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Clone(s.state)
}

// ApplyPatch shallow-merges p onto the current state and returns the new
// full state.
func (s *Store) ApplyPatch(p Patch) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Merge(s.state, p)
	return Clone(s.state)
}

// SaveTactic deep-copies the current board into a new tactic. An empty
// name gets "Tática N" where N counts from the current list length.
func (s *Store) SaveTactic(name string) Tactic {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		name = fmt.Sprintf("Tática %d", len(s.tactics)+1)
	}
	now := time.Now()
	t := Tactic{
		ID:        newTacticID(now),
		Name:      name,
		State:     Clone(s.state),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	s.tactics = append(s.tactics, t)
	return t
}

// DeleteTactic removes by id. An unknown id is a no-op.
func (s *Store) DeleteTactic(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tactics[:0]
	for _, t := range s.tactics {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tactics = kept
}

// Tactics returns a copy of the saved list, oldest first.
func (s *Store) Tactics() []Tactic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Tactic, len(s.tactics))
	copy(out, s.tactics)
	return out
}

// newTacticID keeps the wall-clock-millisecond base the web client
// expects but appends a random suffix so two saves inside the same
// millisecond cannot collide.
func newTacticID(now time.Time) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%d", now.UnixMilli())
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}
