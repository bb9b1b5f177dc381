package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodCash, PaymentMethodMobileMoney:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, string(m))
	}
}

// Payment is a money movement. It references at most one invoice or one bill;
// both references absent means a standalone ledger entry.
type Payment struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Number    string
	Date      time.Time
	Amount    decimal.Decimal
	Method    PaymentMethod
	InvoiceID uuid.UUID
	BillID    uuid.UUID
	Notes     string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
	DeletedBy uuid.UUID
}

func (p Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount %s is not positive", ErrInvalidArgument, p.Amount)
	}

	err := p.Method.Validate()
	if err != nil {
		return err
	}

	if !p.InvoiceID.IsNil() && !p.BillID.IsNil() {
		return fmt.Errorf("%w: payment references both an invoice and a bill", ErrInvalidArgument)
	}

	return nil
}

// TargetDocID returns the referenced document id, or uuid.Nil for a
// standalone payment.
func (p Payment) TargetDocID() uuid.UUID {
	if !p.InvoiceID.IsNil() {
		return p.InvoiceID
	}

	return p.BillID
}

type PaymentFilter struct {
	Method    *PaymentMethod
	InvoiceID *uuid.UUID
	BillID    *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      uint64
	Limit     uint64
	OrderBy   OrderByCol
}
