package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "DRAFT"
	DocumentStatusSent     DocumentStatus = "SENT"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusOverdue  DocumentStatus = "OVERDUE"
	DocumentStatusPaid     DocumentStatus = "PAID"
	DocumentStatusVoid     DocumentStatus = "VOID"
)

func (s DocumentStatus) String() string {
	return string(s)
}

func (s DocumentStatus) Validate() error {
	switch s {
	case DocumentStatusDraft, DocumentStatusSent, DocumentStatusApproved,
		DocumentStatusOverdue, DocumentStatusPaid, DocumentStatusVoid:
		return nil
	default:
		return fmt.Errorf("%w: unknown document status %q", ErrInvalidArgument, string(s))
	}
}

// LineItem is owned by its parent document and immutable after creation.
// Amount is always Quantity × UnitPrice, computed by ComputeTotals.
type LineItem struct {
	ID             uuid.UUID
	Description    string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
	Amount         decimal.Decimal
}

func (l LineItem) Validate() error {
	if l.Description == "" {
		return fmt.Errorf("%w: line item description is empty", ErrInvalidArgument)
	}

	if !l.Quantity.IsPositive() {
		return fmt.Errorf("%w: line item quantity %s is not positive", ErrInvalidArgument, l.Quantity)
	}

	if l.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: line item unit price %s is negative", ErrInvalidArgument, l.UnitPrice)
	}

	if l.TaxRatePercent.IsNegative() || l.TaxRatePercent.GreaterThan(decimal.New(100, 0)) {
		return fmt.Errorf("%w: line item tax rate %s is not within 0-100", ErrInvalidArgument, l.TaxRatePercent)
	}

	return nil
}

// FinancialDocument is an Invoice (receivable) or a Bill (payable).
// Subtotal, TaxAmount and TotalAmount are derived from Lines at creation time
// and never accepted from the outside.
type FinancialDocument struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	DocType        DocType
	Number         string
	CounterpartyID uuid.UUID
	IssueDate      time.Time
	DueDate        time.Time
	Lines          []LineItem
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	PaidAmount     decimal.Decimal
	Status         DocumentStatus
	Notes          string
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
	DeletedBy      uuid.UUID
}

// ValidateLines checks the invariants required to create a document.
func ValidateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: document has no line items", ErrInvalidArgument)
	}

	for i, l := range lines {
		err := l.Validate()
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return nil
}

// ComputeTotals fills in per-line amounts and returns the document aggregates,
// rounded to 2 decimal places:
//
//	subtotal = Σ(quantity × unitPrice)
//	tax      = Σ(quantity × unitPrice × taxRate / 100)
//	total    = subtotal + tax
func ComputeTotals(lines []LineItem) (subtotal, tax, total decimal.Decimal, _ []LineItem) {
	oneHundred := decimal.New(100, 0)

	out := make([]LineItem, 0, len(lines))

	for _, l := range lines {
		l.Amount = l.Quantity.Mul(l.UnitPrice)
		subtotal = subtotal.Add(l.Amount)
		tax = tax.Add(l.Amount.Mul(l.TaxRatePercent).Div(oneHundred))

		out = append(out, l)
	}

	subtotal = subtotal.Round(2)
	tax = tax.Round(2)

	return subtotal, tax, subtotal.Add(tax), out
}

// OpenStatus is the status of a document that has been issued but not fully
// settled: SENT for invoices, APPROVED for bills.
func OpenStatus(docType DocType) DocumentStatus {
	if docType == DocTypeBill {
		return DocumentStatusApproved
	}

	return DocumentStatusSent
}

// SettledStatus returns the status after a payment left paidAmount at paid.
// Paid is not clamped to total: overpayment stays recorded and the document is
// simply PAID.
func SettledStatus(docType DocType, paid, total decimal.Decimal) DocumentStatus {
	if paid.GreaterThanOrEqual(total) {
		return DocumentStatusPaid
	}

	return OpenStatus(docType)
}

type DocumentFilter struct {
	Status         *DocumentStatus
	CounterpartyID *uuid.UUID
	IssuedFrom     *time.Time
	IssuedTo       *time.Time
	Page           uint64
	Limit          uint64
	SortBy         DocumentSortCol
	OrderBy        OrderByCol
}

type DocumentSortCol string

const (
	DocumentSortByNumber    DocumentSortCol = "number"
	DocumentSortByIssueDate DocumentSortCol = "issue_date"
	DocumentSortByTotal     DocumentSortCol = "total_amount"
	DocumentSortByCreatedAt DocumentSortCol = "created_at"
)

func (c DocumentSortCol) String() string {
	return string(c)
}

func (c DocumentSortCol) IsValid() bool {
	switch c {
	case DocumentSortByNumber, DocumentSortByIssueDate, DocumentSortByTotal, DocumentSortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) String() string {
	return string(o)
}

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
