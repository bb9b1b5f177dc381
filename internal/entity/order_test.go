package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/internal/entity"
)

func TestComputeOrderTotals(t *testing.T) {
	t.Parallel()

	store := entity.Store{
		TaxEnabled:      true,
		ShippingEnabled: true,
		ShippingFee:     decimal.RequireFromString("10.00"),
	}

	lines := []entity.OrderLineItem{
		{ProductName: "Mug", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
	}

	subtotal, tax, shipping, total, computed := entity.ComputeOrderTotals(lines, store)

	require.True(t, decimal.RequireFromString("20.00").Equal(subtotal), subtotal.String())
	require.True(t, decimal.RequireFromString("3.20").Equal(tax), tax.String())
	require.True(t, decimal.RequireFromString("10.00").Equal(shipping), shipping.String())
	require.True(t, decimal.RequireFromString("33.20").Equal(total), total.String())
	require.True(t, decimal.RequireFromString("20.00").Equal(computed[0].Amount))
}

func TestComputeOrderTotals_DisabledTaxAndShipping(t *testing.T) {
	t.Parallel()

	store := entity.Store{ShippingFee: decimal.RequireFromString("10.00")}

	lines := []entity.OrderLineItem{
		{ProductName: "Mug", UnitPrice: decimal.RequireFromString("15.50"), Quantity: 3},
	}

	subtotal, tax, shipping, total, _ := entity.ComputeOrderTotals(lines, store)

	require.True(t, decimal.RequireFromString("46.50").Equal(subtotal))
	require.True(t, tax.IsZero())
	require.True(t, shipping.IsZero())
	require.True(t, subtotal.Equal(total))
}

func TestValidateCart(t *testing.T) {
	t.Parallel()

	productID := uuid.Must(uuid.NewV4())

	require.NoError(t, entity.ValidateCart([]entity.CartItem{{ProductID: productID, Quantity: 1}}))

	err := entity.ValidateCart(nil)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	err = entity.ValidateCart([]entity.CartItem{{ProductID: productID, Quantity: 0}})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	err = entity.ValidateCart([]entity.CartItem{{Quantity: 2}})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestPaymentValidate(t *testing.T) {
	t.Parallel()

	p := entity.Payment{
		Amount: decimal.New(100, 0),
		Method: entity.PaymentMethodBankTransfer,
	}
	require.NoError(t, p.Validate())

	p.InvoiceID = uuid.Must(uuid.NewV4())
	require.NoError(t, p.Validate())

	p.BillID = uuid.Must(uuid.NewV4())
	require.ErrorIs(t, p.Validate(), entity.ErrInvalidArgument)

	p = entity.Payment{Amount: decimal.Zero, Method: entity.PaymentMethodCash}
	require.ErrorIs(t, p.Validate(), entity.ErrInvalidArgument)

	p = entity.Payment{Amount: decimal.New(1, 0), Method: "CHEQUE"}
	require.ErrorIs(t, p.Validate(), entity.ErrInvalidArgument)
}
