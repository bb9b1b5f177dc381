package repository

import (
	"context"
	"encoding/json"

	"github.com/bizflow/settlement/internal/entity"
)

// CreateAuditRecord persists one before/after snapshot. Callers treat it as
// fire-and-forget.
func (r *Repository) CreateAuditRecord(ctx context.Context, rec entity.AuditRecord) error {
	before, err := marshalSnapshot(rec.Before)
	if err != nil {
		return err
	}

	after, err := marshalSnapshot(rec.After)
	if err != nil {
		return err
	}

	const q = `
	INSERT INTO audit_log (id, tenant_id, actor_id, action, entity_type, entity_id, before, after, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(ctx, q,
		rec.ID,
		rec.TenantID,
		rec.ActorID,
		rec.Action,
		rec.EntityType,
		rec.EntityID,
		before,
		after,
		rec.CreatedAt,
	)

	return err
}

func marshalSnapshot(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}

	return json.Marshal(v)
}
