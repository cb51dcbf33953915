package memory

import (
	"time"

	"agri-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionStore holds login sessions in process memory. Suits a single
// instance; use the redis store when running more than one.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	// Purge expired sessions every ten minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionStore{cache: c}
}

func (s *SessionStore) Save(session *store.LoginSession) error {
	s.cache.Set(session.Token, session, cache.DefaultExpiration)
	return nil
}

func (s *SessionStore) Get(token string) (*store.LoginSession, bool) {
	if x, found := s.cache.Get(token); found {
		return x.(*store.LoginSession), true
	}
	return nil, false
}

func (s *SessionStore) Delete(token string) error {
	s.cache.Delete(token)
	return nil
}
