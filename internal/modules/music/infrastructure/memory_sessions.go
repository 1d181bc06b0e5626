package infrastructure

import (
	"sync"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// sessionEntry pairs a session with its own lock so page updates for one
// user never contend with other users' entries.
type sessionEntry struct {
	mu         sync.Mutex
	session    *domain.SearchSession
	lastActive time.Time
}

// MemorySessionRepository is an in-memory implementation of SessionRepository.
//
// The outer RWMutex only guards the map itself; per-user mutation happens
// under the entry's own lock, so concurrent AdvancePage calls for the same
// user apply as sequential atomic updates while unrelated users proceed in
// parallel. Put installs a brand-new entry, so an AdvancePage racing with a
// replacement either lands on the old entry (whose snapshot is discarded with
// it) or the new one, never on a torn state.
type MemorySessionRepository struct {
	mu      sync.RWMutex
	entries map[int64]*sessionEntry
}

// NewMemorySessionRepository creates a new MemorySessionRepository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		entries: make(map[int64]*sessionEntry),
	}
}

// Get returns a snapshot of the user's current session, or false if none exists.
func (r *MemorySessionRepository) Get(userID int64) (domain.SearchSession, bool) {
	r.mu.RLock()
	entry, ok := r.entries[userID]
	r.mu.RUnlock()
	if !ok {
		return domain.SearchSession{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return *entry.session, true
}

// Put installs session as the user's current session, discarding any prior one.
func (r *MemorySessionRepository) Put(userID int64, session *domain.SearchSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[userID] = &sessionEntry{
		session:    session,
		lastActive: time.Now(),
	}
}

// AdvancePage atomically adjusts the user's page cursor by delta, clamped to
// the session bounds. Returns false without side effects if no session exists.
func (r *MemorySessionRepository) AdvancePage(
	userID int64,
	delta int,
) (domain.SearchSession, bool) {
	r.mu.RLock()
	entry, ok := r.entries[userID]
	r.mu.RUnlock()
	if !ok {
		return domain.SearchSession{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.AdvancePage(delta)
	entry.lastActive = time.Now()
	return *entry.session, true
}

// Count returns the number of stored sessions (for testing/monitoring).
func (r *MemorySessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// EvictIdle removes sessions whose last activity is older than maxAge and
// returns how many were dropped. A dropped session surfaces to its user as
// the usual "no active session" condition; sessions are cheap to recompute
// with a fresh search.
func (r *MemorySessionRepository) EvictIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for userID, entry := range r.entries {
		entry.mu.Lock()
		idle := entry.lastActive.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(r.entries, userID)
			evicted++
		}
	}
	return evicted
}

// Ensure MemorySessionRepository implements SessionRepository.
var _ domain.SessionRepository = (*MemorySessionRepository)(nil)
