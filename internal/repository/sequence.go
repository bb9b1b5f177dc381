package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
)

// nextDocumentNumber allocates the next sequence value for (tenant, docType)
// and returns it formatted. The upsert increments and returns atomically, so
// two concurrent allocations serialize on the counter row and always receive
// distinct values. Must run inside the transaction that consumes the number.
func nextDocumentNumber(ctx context.Context, q querier, tenantID uuid.UUID, docType entity.DocType) (string, error) {
	const sqlQuery = `
	INSERT INTO document_sequences (tenant_id, doc_type, last_value)
	VALUES ($1, $2, 1)
	ON CONFLICT (tenant_id, doc_type)
	DO UPDATE SET last_value = document_sequences.last_value + 1
	RETURNING last_value`

	var seq int64

	err := q.QueryRow(ctx, sqlQuery, tenantID, docType).Scan(&seq)
	if err != nil {
		return "", err
	}

	return entity.FormatNumber(docType, seq), nil
}

// nextOrderNumber is the store-scoped mirror of nextDocumentNumber.
func nextOrderNumber(ctx context.Context, q querier, storeID uuid.UUID) (string, error) {
	const sqlQuery = `
	INSERT INTO order_sequences (store_id, last_value)
	VALUES ($1, 1)
	ON CONFLICT (store_id)
	DO UPDATE SET last_value = order_sequences.last_value + 1
	RETURNING last_value`

	var seq int64

	err := q.QueryRow(ctx, sqlQuery, storeID).Scan(&seq)
	if err != nil {
		return "", err
	}

	return entity.FormatNumber(entity.DocTypeOrder, seq), nil
}
