package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/bizflow/settlement/internal/entity"
)

const selectDoc = `
	SELECT id, tenant_id, doc_type, number, counterparty_id, issue_date, due_date,
		subtotal, tax_amount, total_amount, paid_amount, status, notes,
		created_by, created_at, updated_at, deleted_at, deleted_by
	FROM documents`

// CreateDocument allocates the document number and inserts the document with
// its line items as one transaction.
func (r *Repository) CreateDocument(ctx context.Context, doc entity.FinancialDocument) (entity.FinancialDocument, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	defer tx.Rollback(ctx)

	doc.Number, err = nextDocumentNumber(ctx, tx, doc.TenantID, doc.DocType)
	if err != nil {
		return entity.FinancialDocument{}, fmt.Errorf("allocate number: %w", err)
	}

	const insertDoc = `
	INSERT INTO documents (
		id, tenant_id, doc_type, number, counterparty_id, issue_date, due_date,
		subtotal, tax_amount, total_amount, paid_amount, status, notes,
		created_by, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.Exec(ctx, insertDoc,
		doc.ID,
		doc.TenantID,
		doc.DocType,
		doc.Number,
		doc.CounterpartyID,
		doc.IssueDate,
		doc.DueDate,
		doc.Subtotal,
		doc.TaxAmount,
		doc.TotalAmount,
		doc.PaidAmount,
		doc.Status,
		doc.Notes,
		doc.CreatedBy,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	const insertLine = `
	INSERT INTO document_lines (id, document_id, position, description, quantity, unit_price, tax_rate_percent, amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for i, l := range doc.Lines {
		_, err = tx.Exec(ctx, insertLine,
			l.ID,
			doc.ID,
			i+1,
			l.Description,
			l.Quantity,
			l.UnitPrice,
			l.TaxRatePercent,
			l.Amount,
		)
		if err != nil {
			return entity.FinancialDocument{}, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	return doc, nil
}

func (r *Repository) Document(ctx context.Context, tenantID, id uuid.UUID) (entity.FinancialDocument, error) {
	q := selectDoc + ` WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL`

	doc, err := scanDoc(r.db.QueryRow(ctx, q, tenantID, id))
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	doc.Lines, err = r.documentLines(ctx, r.db, id)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	return doc, nil
}

func (r *Repository) documentLines(ctx context.Context, q querier, docID uuid.UUID) ([]entity.LineItem, error) {
	const sqlQuery = `
	SELECT id, description, quantity, unit_price, tax_rate_percent, amount
	FROM document_lines
	WHERE document_id = $1
	ORDER BY position`

	rows, err := q.Query(ctx, sqlQuery, docID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var lines []entity.LineItem

	for rows.Next() {
		var l entity.LineItem

		err = rows.Scan(&l.ID, &l.Description, &l.Quantity, &l.UnitPrice, &l.TaxRatePercent, &l.Amount)
		if err != nil {
			return nil, err
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *Repository) Documents(
	ctx context.Context,
	tenantID uuid.UUID,
	docType entity.DocType,
	f entity.DocumentFilter,
) ([]entity.FinancialDocument, int, error) {
	stmt := sq.Select(
		"id",
		"tenant_id",
		"doc_type",
		"number",
		"counterparty_id",
		"issue_date",
		"due_date",
		"subtotal",
		"tax_amount",
		"total_amount",
		"paid_amount",
		"status",
		"notes",
		"created_by",
		"created_at",
		"updated_at",
		"deleted_at",
		"deleted_by",
		"COUNT(*) OVER() AS total_count",
	).From("documents").
		Where(sq.Eq{"tenant_id": tenantID, "doc_type": docType}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)

	stmt = applyDocumentFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	docs := make([]entity.FinancialDocument, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var doc entity.FinancialDocument

		var count int

		err = rows.Scan(
			&doc.ID,
			&doc.TenantID,
			&doc.DocType,
			&doc.Number,
			&doc.CounterpartyID,
			&doc.IssueDate,
			&doc.DueDate,
			&doc.Subtotal,
			&doc.TaxAmount,
			&doc.TotalAmount,
			&doc.PaidAmount,
			&doc.Status,
			&doc.Notes,
			&doc.CreatedBy,
			&doc.CreatedAt,
			&doc.UpdatedAt,
			&doc.DeletedAt,
			(*zeronull.UUID)(&doc.DeletedBy),
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		docs = append(docs, doc)
	}

	return docs, totalCount, rows.Err()
}

func applyDocumentFilter(stmt sq.SelectBuilder, f entity.DocumentFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.CounterpartyID != nil {
		stmt = stmt.Where(sq.Eq{"counterparty_id": *f.CounterpartyID})
	}

	if f.IssuedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"issue_date": *f.IssuedFrom})
	}

	if f.IssuedTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"issue_date": *f.IssuedTo})
	}

	return stmt
}

func (r *Repository) UpdateDocumentStatus(
	ctx context.Context,
	tenantID, id uuid.UUID,
	status entity.DocumentStatus,
	updatedAt time.Time,
) error {
	const q = `
	UPDATE documents SET status = $1, updated_at = $2
	WHERE tenant_id = $3 AND id = $4 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, q, status, updatedAt, tenantID, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// SoftDeleteDocument tombstones a document. A PAID document is never
// deletable: its money trail must remain intact.
func (r *Repository) SoftDeleteDocument(ctx context.Context, tenantID, id, deletedBy uuid.UUID, deletedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	const lockQuery = `
	SELECT status FROM documents
	WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL
	FOR UPDATE`

	var status entity.DocumentStatus

	err = tx.QueryRow(ctx, lockQuery, tenantID, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return err
	}

	if status == entity.DocumentStatusPaid {
		return fmt.Errorf("%w: paid document cannot be deleted", entity.ErrConflict)
	}

	const deleteQuery = `
	UPDATE documents SET deleted_at = $1, deleted_by = $2, updated_at = $1
	WHERE tenant_id = $3 AND id = $4`

	_, err = tx.Exec(ctx, deleteQuery, deletedAt, deletedBy, tenantID, id)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanDoc(row pgx.Row) (doc entity.FinancialDocument, err error) {
	err = row.Scan(
		&doc.ID,
		&doc.TenantID,
		&doc.DocType,
		&doc.Number,
		&doc.CounterpartyID,
		&doc.IssueDate,
		&doc.DueDate,
		&doc.Subtotal,
		&doc.TaxAmount,
		&doc.TotalAmount,
		&doc.PaidAmount,
		&doc.Status,
		&doc.Notes,
		&doc.CreatedBy,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&doc.DeletedAt,
		(*zeronull.UUID)(&doc.DeletedBy),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.FinancialDocument{}, entity.ErrNotFound
		}

		return entity.FinancialDocument{}, err
	}

	return doc, nil
}
