package model

import "time"

const (
	AuditActionCreate = "CREATE"
	AuditActionDelete = "DELETE"

	AuditTargetCustomer = "Customer"
	AuditTargetAccount  = "Account"
)

type AuditEntry struct {
	ID            int64     `json:"id"`
	Action        string    `json:"action"`
	TargetType    string    `json:"target_type"`
	ActorUsername string    `json:"actor_username"`
	CreatedAt     time.Time `json:"created_at"`
}

func (AuditEntry) TableName() string { return "audit_entries" }
