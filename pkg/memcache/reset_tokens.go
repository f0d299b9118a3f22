package memcache

import (
	"sync"
	"time"
)

type entry struct {
	email     string
	expiresAt time.Time
}

// ResetTokenStore keeps password reset tokens in memory. Tokens are
// single use and expire after the configured TTL.
type ResetTokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]entry
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ResetTokenStore{
		ttl:    ttl,
		tokens: make(map[string]entry),
	}
}

func (s *ResetTokenStore) Put(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = entry{email: email, expiresAt: time.Now().Add(s.ttl)}
}

// Consume returns the email bound to the token and removes it. A token
// can only be consumed once.
func (s *ResetTokenStore) Consume(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tokens[token]
	if !ok {
		return "", false
	}
	delete(s.tokens, token)
	if time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}
