package otp

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

func challenge(username, code string) *domain.Challenge {
	now := time.Now().UTC()
	return &domain.Challenge{
		Username:  username,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
}

func TestMemoryStore_PutGetRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if ch, err := store.Get(ctx, "alice"); err != nil || ch != nil {
		t.Fatalf("empty store: expected (nil, nil), got (%v, %v)", ch, err)
	}

	if err := store.Put(ctx, challenge("alice", "111111")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	ch, err := store.Get(ctx, "alice")
	if err != nil || ch == nil || ch.Code != "111111" {
		t.Fatalf("unexpected challenge: (%+v, %v)", ch, err)
	}

	if err := store.Remove(ctx, "alice"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if ch, _ := store.Get(ctx, "alice"); ch != nil {
		t.Fatalf("challenge must be gone after Remove")
	}

	// Removing a missing entry is not an error.
	if err := store.Remove(ctx, "alice"); err != nil {
		t.Fatalf("Remove of missing entry failed: %v", err)
	}
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Put(ctx, challenge("alice", "111111"))
	_ = store.Put(ctx, challenge("alice", "222222"))

	ch, _ := store.Get(ctx, "alice")
	if ch == nil || ch.Code != "222222" {
		t.Fatalf("expected replacement challenge, got %+v", ch)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Put(ctx, challenge("alice", "111111"))

	ch, _ := store.Get(ctx, "alice")
	ch.Code = "mutated"

	again, _ := store.Get(ctx, "alice")
	if again.Code != "111111" {
		t.Fatalf("stored challenge was mutated through a Get result")
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			username := fmt.Sprintf("user%d", n%4)
			for j := 0; j < 100; j++ {
				_ = store.Put(ctx, challenge(username, "123456"))
				_, _ = store.Get(ctx, username)
				_ = store.Remove(ctx, username)
			}
		}(i)
	}
	wg.Wait()
}
