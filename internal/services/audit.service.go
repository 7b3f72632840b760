package services

import (
	"context"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

const trailLimit = 50

type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*model.AuditEntry, error)
}

type AuditService struct {
	auditRepo AuditRepository
}

func NewAuditService(auditRepo AuditRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

// Record appends one immutable audit entry. Callers invoke it inside their
// own WithinTransaction closure so the entry commits with the domain
// mutation it describes.
func (s *AuditService) Record(ctx context.Context, action, targetType, actorUsername string) error {
	_, err := s.auditRepo.Create(ctx, &model.AuditEntry{
		Action:        action,
		TargetType:    targetType,
		ActorUsername: actorUsername,
	})
	return err
}

// Trail returns the most recent entries, newest first, capped at 50.
func (s *AuditService) Trail(ctx context.Context, limit int) ([]*model.AuditEntry, error) {
	if limit <= 0 || limit > trailLimit {
		limit = trailLimit
	}
	return s.auditRepo.ListRecent(ctx, limit)
}
