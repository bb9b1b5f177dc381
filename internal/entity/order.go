package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string {
	return string(s)
}

type OrderPaymentStatus string

const (
	OrderPaymentStatusPending OrderPaymentStatus = "PENDING"
	OrderPaymentStatusPaid    OrderPaymentStatus = "PAID"
	OrderPaymentStatusFailed  OrderPaymentStatus = "FAILED"
)

func (s OrderPaymentStatus) String() string {
	return string(s)
}

// PaymentProvider is the tag that selects a gateway implementation.
type PaymentProvider string

const (
	ProviderCOD         PaymentProvider = "COD"
	ProviderPaystack    PaymentProvider = "PAYSTACK"
	ProviderFlutterwave PaymentProvider = "FLUTTERWAVE"
	ProviderStripe      PaymentProvider = "STRIPE"
)

func (p PaymentProvider) String() string {
	return string(p)
}

func (p PaymentProvider) Validate() error {
	switch p {
	case ProviderCOD, ProviderPaystack, ProviderFlutterwave, ProviderStripe:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment provider %q", ErrInvalidArgument, string(p))
	}
}

// OrderLineItem is a point-in-time snapshot of a product at checkout. Later
// product edits never change it.
type OrderLineItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
	Amount      decimal.Decimal
}

type Order struct {
	ID               uuid.UUID
	StoreID          uuid.UUID
	Number           string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ShippingAddress  string
	Lines            []OrderLineItem
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingAmount   decimal.Decimal
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	PaymentStatus    OrderPaymentStatus
	PaymentProvider  PaymentProvider
	PaymentReference string
	PaymentError     string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CheckoutTaxRatePercent is the flat storefront tax rate applied when the
// store has tax enabled.
var CheckoutTaxRatePercent = decimal.New(16, 0)

// ComputeOrderTotals prices the order from live products at checkout time.
// The result is captured on the order and never recomputed.
func ComputeOrderTotals(lines []OrderLineItem, store Store) (subtotal, tax, shipping, total decimal.Decimal, _ []OrderLineItem) {
	out := make([]OrderLineItem, 0, len(lines))

	for _, l := range lines {
		l.Amount = l.UnitPrice.Mul(decimal.New(l.Quantity, 0))
		subtotal = subtotal.Add(l.Amount)

		out = append(out, l)
	}

	subtotal = subtotal.Round(2)

	if store.TaxEnabled {
		tax = subtotal.Mul(CheckoutTaxRatePercent).Div(decimal.New(100, 0)).Round(2)
	}

	if store.ShippingEnabled {
		shipping = store.ShippingFee
	}

	return subtotal, tax, shipping, subtotal.Add(tax).Add(shipping), out
}

// CartItem is a requested product and quantity on the checkout path.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int64
}

func ValidateCart(items []CartItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrInvalidArgument)
	}

	for i, item := range items {
		if item.ProductID.IsNil() {
			return fmt.Errorf("%w: cart item %d has no product", ErrInvalidArgument, i+1)
		}

		if item.Quantity <= 0 {
			return fmt.Errorf("%w: cart item %d quantity %d is not positive", ErrInvalidArgument, i+1, item.Quantity)
		}
	}

	return nil
}
