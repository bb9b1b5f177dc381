package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/bizflow/settlement/internal/entity"
)

func (r *Repository) Counterparty(ctx context.Context, tenantID, id uuid.UUID) (entity.Counterparty, error) {
	const q = `
	SELECT id, tenant_id, kind, name, email, phone, address, created_at, updated_at, deleted_at
	FROM counterparties
	WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL`

	var c entity.Counterparty

	err := r.db.QueryRow(ctx, q, tenantID, id).Scan(
		&c.ID,
		&c.TenantID,
		&c.Kind,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Counterparty{}, entity.ErrNotFound
		}

		return entity.Counterparty{}, err
	}

	return c, nil
}

func (r *Repository) CreateCounterparty(ctx context.Context, c entity.Counterparty) error {
	const q = `
	INSERT INTO counterparties (id, tenant_id, kind, name, email, phone, address, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, q, c.ID, c.TenantID, c.Kind, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)

	return err
}
