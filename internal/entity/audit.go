package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// AuditRecord captures a before/after snapshot of a mutation. Recording is
// best-effort: a failed write is logged and never fails the operation.
type AuditRecord struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Before     any
	After      any
	CreatedAt  time.Time
}

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)
