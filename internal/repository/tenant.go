package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
)

// UpsertTenant creates the tenant on first sight of the identity provider's
// organization id and returns the stored row either way.
func (r *Repository) UpsertTenant(ctx context.Context, t entity.Tenant) (entity.Tenant, error) {
	const q = `
	INSERT INTO tenants (id, external_id, name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (external_id)
	DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
	RETURNING id, external_id, name, created_at, updated_at`

	err := r.db.QueryRow(ctx, q, t.ID, t.ExternalID, t.Name, t.CreatedAt, t.UpdatedAt).Scan(
		&t.ID,
		&t.ExternalID,
		&t.Name,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return entity.Tenant{}, err
	}

	return t, nil
}

func (r *Repository) UpsertEmployee(ctx context.Context, e entity.Employee) error {
	const q = `
	INSERT INTO employees (id, tenant_id, external_id, email, name, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (tenant_id, external_id)
	DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, q, e.ID, e.TenantID, e.ExternalID, e.Email, e.Name, e.Status, e.CreatedAt, e.UpdatedAt)

	return err
}

func (r *Repository) TerminateEmployee(ctx context.Context, tenantID uuid.UUID, externalID string, updatedAt time.Time) error {
	const q = `
	UPDATE employees SET status = $1, updated_at = $2
	WHERE tenant_id = $3 AND external_id = $4`

	result, err := r.db.Exec(ctx, q, entity.EmployeeStatusTerminated, updatedAt, tenantID, externalID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
