package repository

import (
	"context"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
)

type AuditRepository struct {
	*pg.DB
}

func NewAuditRepository(db *pg.DB) *AuditRepository {
	return &AuditRepository{
		db,
	}
}

func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	entity := toAuditEntryEntity(entry)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toAuditEntryModel(entity), nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*model.AuditEntry, error) {
	var entities []*AuditEntryEntity

	err := r.Read(ctx).WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}

	return toAuditEntryModels(entities), nil
}
