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
	"github.com/shopspring/decimal"

	"github.com/bizflow/settlement/internal/entity"
)

const selectPayment = `
	SELECT id, tenant_id, number, date, amount, method, invoice_id, bill_id, notes,
		created_by, created_at, updated_at, deleted_at, deleted_by
	FROM payments`

// ApplyPayment records the payment and settles it against its target document
// as a single transaction. The target row is locked for the read-modify-write
// of paid_amount, so concurrent payments against the same document serialize
// and the second one sees the first one's write. The new paid amount is not
// clamped to the total: overpayment stays recorded and the status is PAID.
func (r *Repository) ApplyPayment(ctx context.Context, p entity.Payment) (entity.Payment, entity.FinancialDocument, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	defer tx.Rollback(ctx)

	p.Number, err = nextDocumentNumber(ctx, tx, p.TenantID, entity.DocTypePayment)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, fmt.Errorf("allocate number: %w", err)
	}

	const insertPayment = `
	INSERT INTO payments (id, tenant_id, number, date, amount, method, invoice_id, bill_id, notes, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.Exec(ctx, insertPayment,
		p.ID,
		p.TenantID,
		p.Number,
		p.Date,
		p.Amount,
		p.Method,
		zeronull.UUID(p.InvoiceID),
		zeronull.UUID(p.BillID),
		p.Notes,
		p.CreatedBy,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	var doc entity.FinancialDocument

	if docID := p.TargetDocID(); !docID.IsNil() {
		doc, err = settleDocument(ctx, tx, p.TenantID, docID, p.Amount, p.UpdatedAt)
		if err != nil {
			return entity.Payment{}, entity.FinancialDocument{}, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	return p, doc, nil
}

// settleDocument adds amount to the locked document's paid_amount and derives
// the new status from the value read inside this transaction.
func settleDocument(
	ctx context.Context,
	q querier,
	tenantID, docID uuid.UUID,
	amount decimal.Decimal,
	now time.Time,
) (entity.FinancialDocument, error) {
	doc, err := lockDocument(ctx, q, tenantID, docID)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	doc.PaidAmount = doc.PaidAmount.Add(amount)
	doc.Status = entity.SettledStatus(doc.DocType, doc.PaidAmount, doc.TotalAmount)
	doc.UpdatedAt = now

	err = updatePaidAmount(ctx, q, doc)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	return doc, nil
}

// ReversePayment soft-deletes the payment and rolls its amount back out of
// the target document in one transaction. The resulting status is always the
// open one (SENT/APPROVED), even when the paid amount drops to zero.
func (r *Repository) ReversePayment(
	ctx context.Context,
	tenantID, paymentID, deletedBy uuid.UUID,
	deletedAt time.Time,
) (entity.Payment, entity.FinancialDocument, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	defer tx.Rollback(ctx)

	q := selectPayment + ` WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL FOR UPDATE`

	p, err := scanPayment(tx.QueryRow(ctx, q, tenantID, paymentID))
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	const deleteQuery = `
	UPDATE payments SET deleted_at = $1, deleted_by = $2, updated_at = $1
	WHERE tenant_id = $3 AND id = $4`

	_, err = tx.Exec(ctx, deleteQuery, deletedAt, deletedBy, tenantID, paymentID)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	var doc entity.FinancialDocument

	if docID := p.TargetDocID(); !docID.IsNil() {
		doc, err = lockDocument(ctx, tx, tenantID, docID)
		if err != nil {
			return entity.Payment{}, entity.FinancialDocument{}, err
		}

		doc.PaidAmount = doc.PaidAmount.Sub(p.Amount)
		if doc.PaidAmount.IsNegative() {
			doc.PaidAmount = decimal.Zero
		}

		doc.Status = entity.OpenStatus(doc.DocType)
		doc.UpdatedAt = deletedAt

		err = updatePaidAmount(ctx, tx, doc)
		if err != nil {
			return entity.Payment{}, entity.FinancialDocument{}, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Payment{}, entity.FinancialDocument{}, err
	}

	p.DeletedAt = &deletedAt
	p.DeletedBy = deletedBy

	return p, doc, nil
}

func lockDocument(ctx context.Context, q querier, tenantID, docID uuid.UUID) (entity.FinancialDocument, error) {
	lockQuery := selectDoc + ` WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL FOR UPDATE`

	return scanDoc(q.QueryRow(ctx, lockQuery, tenantID, docID))
}

func updatePaidAmount(ctx context.Context, q querier, doc entity.FinancialDocument) error {
	const sqlQuery = `
	UPDATE documents SET paid_amount = $1, status = $2, updated_at = $3
	WHERE tenant_id = $4 AND id = $5`

	_, err := q.Exec(ctx, sqlQuery, doc.PaidAmount, doc.Status, doc.UpdatedAt, doc.TenantID, doc.ID)

	return err
}

func (r *Repository) Payment(ctx context.Context, tenantID, id uuid.UUID) (entity.Payment, error) {
	q := selectPayment + ` WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL`
	return scanPayment(r.db.QueryRow(ctx, q, tenantID, id))
}

func (r *Repository) Payments(
	ctx context.Context,
	tenantID uuid.UUID,
	f entity.PaymentFilter,
) ([]entity.Payment, int, error) {
	stmt := sq.Select(
		"id",
		"tenant_id",
		"number",
		"date",
		"amount",
		"method",
		"invoice_id",
		"bill_id",
		"notes",
		"created_by",
		"created_at",
		"updated_at",
		"deleted_at",
		"deleted_by",
		"COUNT(*) OVER() AS total_count",
	).From("payments").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)

	stmt = applyPaymentFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("date %s", f.OrderBy))

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := make([]entity.Payment, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var p entity.Payment

		var count int

		err = rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Number,
			&p.Date,
			&p.Amount,
			&p.Method,
			(*zeronull.UUID)(&p.InvoiceID),
			(*zeronull.UUID)(&p.BillID),
			&p.Notes,
			&p.CreatedBy,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.DeletedAt,
			(*zeronull.UUID)(&p.DeletedBy),
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		payments = append(payments, p)
	}

	return payments, totalCount, rows.Err()
}

func applyPaymentFilter(stmt sq.SelectBuilder, f entity.PaymentFilter) sq.SelectBuilder {
	if f.Method != nil {
		stmt = stmt.Where(sq.Eq{"method": *f.Method})
	}

	if f.InvoiceID != nil {
		stmt = stmt.Where(sq.Eq{"invoice_id": *f.InvoiceID})
	}

	if f.BillID != nil {
		stmt = stmt.Where(sq.Eq{"bill_id": *f.BillID})
	}

	if f.DateFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"date": *f.DateFrom})
	}

	if f.DateTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"date": *f.DateTo})
	}

	return stmt
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Number,
		&p.Date,
		&p.Amount,
		&p.Method,
		(*zeronull.UUID)(&p.InvoiceID),
		(*zeronull.UUID)(&p.BillID),
		&p.Notes,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
		(*zeronull.UUID)(&p.DeletedBy),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}
