// internal/store/memory.go
//
// In-memory session store for live decoder games.
// In-progress puzzles are never persisted; only finished results reach SQLite.
//
// Characteristics:
//   - Stores *Session objects keyed by game ID in a map.
//   - Concurrency-safe via RWMutex; Update runs the mutation under the write
//     lock, which serializes events for a game (game.Game itself is not
//     safe for concurrent use).
//   - Sessions idle for longer than the TTL are swept on Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/element-decoder/internal/game"
)

var ErrNotFound = errors.New("not found")

// Session is a live game plus who owns it and how it was started.
type Session struct {
	Game      *game.Game
	Level     string
	OwnerID   string // user ID, or the anonymous cookie ID for guests
	Anonymous bool
	Daily     bool
	DailyDate string
	WordIndex int
	Recorded  bool // finish already written to the database
	touched   time.Time
}

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by game ID.
	// The returned session must not be mutated; use Update.
	Get(ctx context.Context, id string) (*Session, error)

	// Update runs fn with exclusive access to the session.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Len is the number of live sessions.
	Len() int
}

// DefaultTTL bounds how long an untouched session is kept.
const DefaultTTL = 6 * time.Hour

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store with DefaultTTL.
func NewMemoryStore() Store { return NewMemoryStoreTTL(DefaultTTL, time.Now) }

// NewMemoryStoreTTL lets tests control expiry.
func NewMemoryStoreTTL(ttl time.Duration, now func() time.Time) Store {
	return &memory{sessions: make(map[string]*Session), ttl: ttl, now: now}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	if s == nil || s.Game == nil {
		return errors.New("store: session without game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	s.touched = now
	m.sessions[s.Game.ID] = s
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

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.touched = m.now()
	return fn(s)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// sweep drops expired sessions. Caller holds the write lock.
func (m *memory) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if now.Sub(s.touched) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
