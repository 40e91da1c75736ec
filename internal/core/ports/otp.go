package ports

import (
	"context"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// ChallengeStore keeps at most one live challenge per username. Put
// unconditionally replaces any prior challenge for the same username; Get
// returns (nil, nil) when nothing is pending. All operations are atomic
// with respect to concurrent callers.
type ChallengeStore interface {
	Put(ctx context.Context, ch *domain.Challenge) error
	Get(ctx context.Context, username string) (*domain.Challenge, error)
	Remove(ctx context.Context, username string) error
}

// Notifier delivers a text message to an out-of-band address (the admin's
// WhatsApp number). Any non-success response or network error is reported
// uniformly as an error; the caller decides whether to surface it.
type Notifier interface {
	Send(ctx context.Context, destination, message string) error
}
