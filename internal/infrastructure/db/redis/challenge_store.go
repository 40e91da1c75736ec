package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

const challengePrefix = "otp:challenge:"

// ChallengeStore keeps login challenges in Redis so pending challenges
// survive a process restart. The key TTL mirrors the challenge expiry with a
// small grace period so the verify path can still distinguish "expired" from
// "never existed" right after the deadline.
type ChallengeStore struct {
	client *redis.Client
	grace  time.Duration
}

// NewChallengeStore wraps the given Redis client.
func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client, grace: 30 * time.Second}
}

// Put upserts the challenge under otp:challenge:<username>, replacing any
// prior value.
func (s *ChallengeStore) Put(ctx context.Context, ch *domain.Challenge) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}
	ttl := time.Until(ch.ExpiresAt) + s.grace
	if ttl <= 0 {
		ttl = s.grace
	}
	if err := s.client.Set(ctx, challengePrefix+ch.Username, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

// Get returns the active challenge for username, or (nil, nil) when none is
// pending.
func (s *ChallengeStore) Get(ctx context.Context, username string) (*domain.Challenge, error) {
	payload, err := s.client.Get(ctx, challengePrefix+username).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch challenge: %w", err)
	}

	var ch domain.Challenge
	if err := json.Unmarshal(payload, &ch); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}
	return &ch, nil
}

// Remove deletes the challenge for username. Deleting a missing key is not
// an error.
func (s *ChallengeStore) Remove(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, challengePrefix+username).Err(); err != nil {
		return fmt.Errorf("remove challenge: %w", err)
	}
	return nil
}
