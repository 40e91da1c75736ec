package otp

import (
	"context"
	"sync"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// MemoryStore is the default ChallengeStore: a mutex-guarded map keyed by
// username. State lives for the process lifetime only; a restart drops all
// pending challenges, which is acceptable given the short TTL. No background
// sweep runs — stale entries are removed at verification time or overwritten
// by the next challenge for the same username.
type MemoryStore struct {
	mu         sync.Mutex
	challenges map[string]domain.Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{challenges: make(map[string]domain.Challenge)}
}

// Put upserts the challenge, unconditionally replacing any prior one for the
// same username.
func (s *MemoryStore) Put(_ context.Context, ch *domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[ch.Username] = *ch
	return nil
}

// Get returns the active challenge for username, or (nil, nil) when none is
// pending. The returned value is a copy; mutations do not affect the store.
func (s *MemoryStore) Get(_ context.Context, username string) (*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[username]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

// Remove deletes the challenge for username. Removing a missing entry is not
// an error.
func (s *MemoryStore) Remove(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, username)
	return nil
}
