package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

type stubAuditRepo struct {
	inserted  []*domain.LoginEvent
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.LoginEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, username string, _ int) ([]*domain.LoginEvent, error) {
	var out []*domain.LoginEvent
	for i := len(r.inserted) - 1; i >= 0; i-- {
		if r.inserted[i].Username == username {
			out = append(out, r.inserted[i])
		}
	}
	return out, nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Process(context.Background(), ports.LoginEventInput{
		Username: "alice",
		Kind:     domain.EventOTPRequested,
		RemoteIP: "10.0.0.1",
		At:       at,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.Username != "alice" || got.Kind != domain.EventOTPRequested || got.RemoteIP != "10.0.0.1" || !got.At.Equal(at) {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestAuditService_Process_RepoError(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("write failed")}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.LoginEventInput{Username: "alice", Kind: domain.EventLoginFailed})
	if err == nil {
		t.Fatalf("expected error from failing repository")
	}
}

func TestAuditService_Recent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for _, kind := range []string{domain.EventOTPRequested, domain.EventLoginSucceeded} {
		_ = svc.Process(context.Background(), ports.LoginEventInput{Username: "alice", Kind: kind})
	}
	_ = svc.Process(context.Background(), ports.LoginEventInput{Username: "bob", Kind: domain.EventLoginFailed})

	events, err := svc.Recent(context.Background(), "alice", 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for alice, got %d", len(events))
	}
	if events[0].Kind != domain.EventLoginSucceeded {
		t.Fatalf("expected newest first, got %s", events[0].Kind)
	}
}
