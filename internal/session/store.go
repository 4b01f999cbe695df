package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"insightchat/internal/models"
)

// Session is one operator conversation. Its history is append-only and
// lives as long as the session. The embedded turn lock serializes turns:
// a second question is not processed until the previous turn's history
// update has landed.
type Session struct {
	ID string

	// lastSeen is guarded by the owning store's mutex.
	lastSeen time.Time

	turnMu    sync.Mutex
	historyMu sync.RWMutex
	entries   []models.ConversationEntry
}

// Lock acquires the session's turn lock.
func (s *Session) Lock() { s.turnMu.Lock() }

// Unlock releases the session's turn lock.
func (s *Session) Unlock() { s.turnMu.Unlock() }

// Append adds an entry to the history. Entries are never rewritten.
func (s *Session) Append(role, text string, table *models.Table, graph *models.ChartSpec) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.entries = append(s.entries, models.ConversationEntry{
		Role:      role,
		Text:      text,
		Table:     table,
		Graph:     graph,
		CreatedAt: time.Now().UTC(),
	})
}

// History returns a copy of the conversation log in append order.
func (s *Session) History() []models.ConversationEntry {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()
	entries := make([]models.ConversationEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Store holds the live sessions. Sessions are independent: no state is
// shared across them. A session idle past the TTL is evicted lazily on
// the next store access, like the cache's expiry.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewStore creates an empty session store. An idleTTL of zero or less
// keeps sessions forever.
func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// purgeIdle drops sessions idle past the TTL. Caller holds the mutex.
func (s *Store) purgeIdle() {
	if s.idleTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.idleTTL)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Get returns the session with the given id, creating it if needed. An
// empty id starts a fresh session with a generated id.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeIdle()

	if id == "" {
		id = uuid.NewString()
	}
	if existing, ok := s.sessions[id]; ok {
		existing.lastSeen = s.now()
		return existing
	}
	created := &Session{ID: id, lastSeen: s.now()}
	s.sessions[id] = created
	return created
}

// Lookup returns the session with the given id without creating one.
func (s *Store) Lookup(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeIdle()

	existing, ok := s.sessions[id]
	if ok {
		existing.lastSeen = s.now()
	}
	return existing, ok
}
