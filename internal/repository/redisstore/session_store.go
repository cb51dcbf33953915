package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"agri-assistant-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_session:"

// SessionStore keeps login sessions in redis so every instance behind a load
// balancer sees the same cookie state.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(session *store.LoginSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), keyPrefix+session.Token, payload, s.ttl).Err()
}

func (s *SessionStore) Get(token string) (*store.LoginSession, bool) {
	payload, err := s.client.Get(context.Background(), keyPrefix+token).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.LoginSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (s *SessionStore) Delete(token string) error {
	return s.client.Del(context.Background(), keyPrefix+token).Err()
}
