package ports

import (
	"context"
	"time"

	"github.com/littlesona/vks-portal/internal/core/domain"
)

// LoginEventInput is the DTO passed from the transport layer to AuditService.
type LoginEventInput struct {
	Username string
	Kind     string
	RemoteIP string
	At       time.Time
}

// AuditService processes authentication audit events and serves the
// admin-facing audit trail.
type AuditService interface {
	Process(ctx context.Context, event LoginEventInput) error
	Recent(ctx context.Context, username string, limit int) ([]*domain.LoginEvent, error)
}

// AuditRepository persists login events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.LoginEvent) error
	// ListRecent returns the newest events for a username, most recent first.
	ListRecent(ctx context.Context, username string, limit int) ([]*domain.LoginEvent, error)
}
