package repository

import (
	"time"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
)

type AuditEntryEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	Action        string    `db:"action"         gorm:"column:action;not null"`
	TargetType    string    `db:"target_type"    gorm:"column:target_type;not null"`
	ActorUsername string    `db:"actor_username" gorm:"column:actor_username;not null"`
	CreatedAt     time.Time `db:"created_at"     gorm:"column:created_at;autoCreateTime"`
}

func (AuditEntryEntity) TableName() string {
	return "audit_entries"
}

func toAuditEntryEntity(m *model.AuditEntry) *AuditEntryEntity {
	if m == nil {
		return nil
	}
	return &AuditEntryEntity{
		ID:            m.ID,
		Action:        m.Action,
		TargetType:    m.TargetType,
		ActorUsername: m.ActorUsername,
		CreatedAt:     m.CreatedAt,
	}
}

func toAuditEntryModel(e *AuditEntryEntity) *model.AuditEntry {
	if e == nil {
		return nil
	}
	return &model.AuditEntry{
		ID:            e.ID,
		Action:        e.Action,
		TargetType:    e.TargetType,
		ActorUsername: e.ActorUsername,
		CreatedAt:     e.CreatedAt,
	}
}

func toAuditEntryModels(entities []*AuditEntryEntity) []*model.AuditEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.AuditEntry, len(entities))
	for i, e := range entities {
		models[i] = toAuditEntryModel(e)
	}
	return models
}
