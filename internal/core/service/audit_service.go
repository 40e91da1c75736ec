package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation that persists
// login events to the audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single login event.
func (s *auditService) Process(ctx context.Context, in ports.LoginEventInput) error {
	event := &domain.LoginEvent{
		Username: in.Username,
		Kind:     in.Kind,
		RemoteIP: in.RemoteIP,
		At:       in.At,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process login event: %w", err)
	}

	s.log.Debug().
		Str("username", in.Username).
		Str("kind", in.Kind).
		Msg("login event recorded")
	return nil
}

// Recent returns the newest login events for a username, most recent first.
func (s *auditService) Recent(ctx context.Context, username string, limit int) ([]*domain.LoginEvent, error) {
	events, err := s.repo.ListRecent(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("list login events: %w", err)
	}
	return events, nil
}
