package memory

import (
	"sync"

	"customs-clearance-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the process-wide session memory store. Sessions are
// created lazily and live for the process lifetime; history is lost on
// restart by design.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Conversations never expire within the process lifetime, so the cache
	// is configured with no expiration and no janitor.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session for sessionID, creating it on first
// reference. Repeated calls with the same id return the same underlying
// session, so mutations through one handle are visible through any other.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the lock so two concurrent first references agree on
	// one session instance.
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}
	session := store.NewSession(sessionID)
	r.cache.Set(sessionID, session, cache.NoExpiration)
	return session
}

// Get returns the session for sessionID if it exists.
func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}
