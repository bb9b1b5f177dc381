package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type CounterpartyKind string

const (
	CounterpartyCustomer CounterpartyKind = "CUSTOMER"
	CounterpartyVendor   CounterpartyKind = "VENDOR"
)

// Counterparty is the other side of a financial document: a customer for
// invoices, a vendor for bills.
type Counterparty struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Kind      CounterpartyKind
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Kind of counterparty a document type settles against.
func (d DocType) CounterpartyKind() CounterpartyKind {
	if d == DocTypeBill {
		return CounterpartyVendor
	}

	return CounterpartyCustomer
}
