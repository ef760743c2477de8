package service

import (
	"context"
	"fmt"

	"github.com/jltforwarding/backoffice/internal/api/metrics"
	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// AuditService persists session-lifecycle events. Called from the dispatcher
// workers, never from the request path.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("insert audit event: %w", err)
	}
	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	return nil
}
