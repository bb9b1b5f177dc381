package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Store is a tenant's public storefront, resolved by slug on the guest
// checkout path.
type Store struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Slug            string
	Name            string
	Currency        string
	TaxEnabled      bool
	ShippingEnabled bool
	ShippingFee     decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product carries live stock. Stock is decremented when an order is created,
// not when its payment settles.
type Product struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
