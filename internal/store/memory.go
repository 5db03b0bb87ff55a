// internal/store/memory.go
//
// Session registry for live hangman games.
// The engine is single-threaded by contract, so each session carries a
// mutex and handlers hold it across every engine call for a request. The
// only implementation is an in-memory map: persistence is out of scope,
// sessions vanish on restart.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Danzzilla/Unbeatable-Hangman/internal/game"
)

// ErrNotFound is returned by Get for an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Session pairs a game with its ID and the lock that serializes access to
// it. Lock the session before touching Game.
type Session struct {
	sync.Mutex
	ID      string
	Game    *game.Game
	Created time.Time
}

// NewSession wraps a game in a session with a fresh ID.
func NewSession(g *game.Game) *Session {
	return &Session{ID: uuid.NewString(), Game: g, Created: time.Now().UTC()}
}

// Store is the registry interface for live sessions. Implementations may
// be backed by memory (this package) or anything else an embedding system
// needs.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is a map-based Store. The RWMutex guards the map only; per-game
// serialization is the Session's own lock.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
