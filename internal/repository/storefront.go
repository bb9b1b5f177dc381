package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/bizflow/settlement/internal/entity"
)

const selectOrder = `
	SELECT id, store_id, number, customer_name, customer_email, customer_phone, shipping_address,
		subtotal, tax_amount, shipping_amount, total_amount,
		status, payment_status, payment_provider, payment_reference, payment_error, paid_at,
		created_at, updated_at
	FROM orders`

func (r *Repository) ActiveStoreBySlug(ctx context.Context, slug string) (entity.Store, error) {
	const q = `
	SELECT id, tenant_id, slug, name, currency, tax_enabled, shipping_enabled, shipping_fee, active, created_at, updated_at
	FROM stores
	WHERE slug = $1 AND active`

	var s entity.Store

	err := r.db.QueryRow(ctx, q, slug).Scan(
		&s.ID,
		&s.TenantID,
		&s.Slug,
		&s.Name,
		&s.Currency,
		&s.TaxEnabled,
		&s.ShippingEnabled,
		&s.ShippingFee,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Store{}, entity.ErrNotFound
		}

		return entity.Store{}, err
	}

	return s, nil
}

func (r *Repository) StoreByID(ctx context.Context, id uuid.UUID) (entity.Store, error) {
	const q = `
	SELECT id, tenant_id, slug, name, currency, tax_enabled, shipping_enabled, shipping_fee, active, created_at, updated_at
	FROM stores
	WHERE id = $1`

	var s entity.Store

	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID,
		&s.TenantID,
		&s.Slug,
		&s.Name,
		&s.Currency,
		&s.TaxEnabled,
		&s.ShippingEnabled,
		&s.ShippingFee,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Store{}, entity.ErrNotFound
		}

		return entity.Store{}, err
	}

	return s, nil
}

func (r *Repository) CreateStore(ctx context.Context, s entity.Store) error {
	const q = `
	INSERT INTO stores (id, tenant_id, slug, name, currency, tax_enabled, shipping_enabled, shipping_fee, active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		s.ID, s.TenantID, s.Slug, s.Name, s.Currency,
		s.TaxEnabled, s.ShippingEnabled, s.ShippingFee, s.Active, s.CreatedAt, s.UpdatedAt,
	)

	return err
}

func (r *Repository) CreateProduct(ctx context.Context, p entity.Product) error {
	const q = `
	INSERT INTO products (id, store_id, name, price, stock_quantity, active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, p.ID, p.StoreID, p.Name, p.Price, p.StockQuantity, p.Active, p.CreatedAt, p.UpdatedAt)

	return err
}

// ActiveProductsByIDs returns the store's active products among ids. Callers
// compare the result against the request to reject partially available carts.
func (r *Repository) ActiveProductsByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
	const q = `
	SELECT id, store_id, name, price, stock_quantity, active, created_at, updated_at
	FROM products
	WHERE store_id = $1 AND id = ANY($2) AND active`

	rows, err := r.db.Query(ctx, q, storeID, ids)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []entity.Product

	for rows.Next() {
		var p entity.Product

		err = rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.StockQuantity, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateOrder allocates the order number, inserts the order with its line
// snapshots and decrements stock, all in one transaction. Stock is consumed
// at creation time, before payment settles; no floor is enforced.
func (r *Repository) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	defer tx.Rollback(ctx)

	order.Number, err = nextOrderNumber(ctx, tx, order.StoreID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("allocate number: %w", err)
	}

	const insertOrder = `
	INSERT INTO orders (
		id, store_id, number, customer_name, customer_email, customer_phone, shipping_address,
		subtotal, tax_amount, shipping_amount, total_amount,
		status, payment_status, payment_provider, payment_reference, payment_error, paid_at,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err = tx.Exec(ctx, insertOrder,
		order.ID,
		order.StoreID,
		order.Number,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ShippingAddress,
		order.Subtotal,
		order.TaxAmount,
		order.ShippingAmount,
		order.TotalAmount,
		order.Status,
		order.PaymentStatus,
		order.PaymentProvider,
		zeronull.Text(order.PaymentReference),
		zeronull.Text(order.PaymentError),
		order.PaidAt,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return entity.Order{}, err
	}

	const insertLine = `
	INSERT INTO order_lines (id, order_id, position, product_id, product_name, unit_price, quantity, amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	const decrementStock = `
	UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = $2
	WHERE id = $3`

	for i, l := range order.Lines {
		_, err = tx.Exec(ctx, insertLine,
			l.ID,
			order.ID,
			i+1,
			l.ProductID,
			l.ProductName,
			l.UnitPrice,
			l.Quantity,
			l.Amount,
		)
		if err != nil {
			return entity.Order{}, err
		}

		_, err = tx.Exec(ctx, decrementStock, l.Quantity, order.UpdatedAt, l.ProductID)
		if err != nil {
			return entity.Order{}, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (r *Repository) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	q := selectOrder + ` WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Order{}, err
	}

	order.Lines, err = r.orderLines(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (r *Repository) orderLines(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLineItem, error) {
	const q = `
	SELECT id, product_id, product_name, unit_price, quantity, amount
	FROM order_lines
	WHERE order_id = $1
	ORDER BY position`

	rows, err := r.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var lines []entity.OrderLineItem

	for rows.Next() {
		var l entity.OrderLineItem

		err = rows.Scan(&l.ID, &l.ProductID, &l.ProductName, &l.UnitPrice, &l.Quantity, &l.Amount)
		if err != nil {
			return nil, err
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// SetOrderPaymentReference persists the gateway reference and hands the order
// back with payment still pending.
func (r *Repository) SetOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string, updatedAt time.Time) error {
	const q = `UPDATE orders SET payment_reference = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, reference, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkOrderPaymentFailed records the provider error. The order row persists
// as an inspectable failed attempt.
func (r *Repository) MarkOrderPaymentFailed(ctx context.Context, id uuid.UUID, providerErr string, updatedAt time.Time) error {
	const q = `
	UPDATE orders SET payment_status = $1, payment_error = $2, updated_at = $3
	WHERE id = $4`

	result, err := r.db.Exec(ctx, q, entity.OrderPaymentStatusFailed, providerErr, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) MarkOrderConfirmed(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	const q = `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, entity.OrderStatusConfirmed, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) MarkOrderPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	const q = `
	UPDATE orders SET payment_status = $1, status = $2, paid_at = $3, updated_at = $3
	WHERE id = $4`

	result, err := r.db.Exec(ctx, q, entity.OrderPaymentStatusPaid, entity.OrderStatusConfirmed, paidAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// FailStaleOrders flips abandoned checkouts created before cutoff to FAILED.
// Only orders still PENDING on both axes qualify: a confirmed COD order keeps
// its payment pending until delivery and must not be expired.
func (r *Repository) FailStaleOrders(ctx context.Context, cutoff, updatedAt time.Time) error {
	const q = `
	UPDATE orders SET payment_status = $1, payment_error = 'stale checkout expired', updated_at = $2
	WHERE payment_status = $3 AND status = $4 AND created_at < $5`

	_, err := r.db.Exec(ctx, q, entity.OrderPaymentStatusFailed, updatedAt, entity.OrderPaymentStatusPending, entity.OrderStatusPending, cutoff)

	return err
}

func scanOrder(row pgx.Row) (o entity.Order, err error) {
	err = row.Scan(
		&o.ID,
		&o.StoreID,
		&o.Number,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.ShippingAddress,
		&o.Subtotal,
		&o.TaxAmount,
		&o.ShippingAmount,
		&o.TotalAmount,
		&o.Status,
		&o.PaymentStatus,
		&o.PaymentProvider,
		(*zeronull.Text)(&o.PaymentReference),
		(*zeronull.Text)(&o.PaymentError),
		&o.PaidAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	return o, nil
}
