package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/internal/entity"
)

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	lines := []entity.LineItem{
		{
			Description:    "Consulting",
			Quantity:       decimal.New(2, 0),
			UnitPrice:      decimal.RequireFromString("150.00"),
			TaxRatePercent: decimal.New(16, 0),
		},
		{
			Description:    "Hosting",
			Quantity:       decimal.New(1, 0),
			UnitPrice:      decimal.RequireFromString("49.99"),
			TaxRatePercent: decimal.New(0, 0),
		},
	}

	subtotal, tax, total, computed := entity.ComputeTotals(lines)

	require.True(t, decimal.RequireFromString("349.99").Equal(subtotal), subtotal.String())
	require.True(t, decimal.RequireFromString("48.00").Equal(tax), tax.String())
	require.True(t, decimal.RequireFromString("397.99").Equal(total), total.String())

	require.Len(t, computed, 2)
	require.True(t, decimal.RequireFromString("300.00").Equal(computed[0].Amount))
	require.True(t, decimal.RequireFromString("49.99").Equal(computed[1].Amount))
}

func TestComputeTotals_TotalIsSubtotalPlusTax(t *testing.T) {
	t.Parallel()

	lines := []entity.LineItem{
		{Description: "a", Quantity: decimal.New(3, 0), UnitPrice: decimal.RequireFromString("19.99"), TaxRatePercent: decimal.New(7, 0)},
		{Description: "b", Quantity: decimal.New(10, 0), UnitPrice: decimal.RequireFromString("0.33"), TaxRatePercent: decimal.New(19, 0)},
		{Description: "c", Quantity: decimal.New(1, 0), UnitPrice: decimal.New(0, 0), TaxRatePercent: decimal.New(100, 0)},
	}

	subtotal, tax, total, _ := entity.ComputeTotals(lines)
	require.True(t, subtotal.Add(tax).Equal(total))
}

func TestValidateLines(t *testing.T) {
	t.Parallel()

	valid := entity.LineItem{
		Description:    "Widget",
		Quantity:       decimal.New(1, 0),
		UnitPrice:      decimal.New(10, 0),
		TaxRatePercent: decimal.New(16, 0),
	}

	tests := []struct {
		name    string
		lines   []entity.LineItem
		wantErr bool
	}{
		{name: "valid", lines: []entity.LineItem{valid}},
		{name: "empty", lines: nil, wantErr: true},
		{
			name: "zero quantity",
			lines: []entity.LineItem{{
				Description: "Widget", Quantity: decimal.Zero, UnitPrice: decimal.New(10, 0),
			}},
			wantErr: true,
		},
		{
			name: "negative price",
			lines: []entity.LineItem{{
				Description: "Widget", Quantity: decimal.New(1, 0), UnitPrice: decimal.New(-1, 0),
			}},
			wantErr: true,
		},
		{
			name: "tax rate above 100",
			lines: []entity.LineItem{{
				Description: "Widget", Quantity: decimal.New(1, 0), UnitPrice: decimal.New(1, 0),
				TaxRatePercent: decimal.New(101, 0),
			}},
			wantErr: true,
		},
		{
			name:    "second line invalid",
			lines:   []entity.LineItem{valid, {Description: "", Quantity: decimal.New(1, 0)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := entity.ValidateLines(tt.lines)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSettledStatus(t *testing.T) {
	t.Parallel()

	total := decimal.New(100, 0)

	require.Equal(t, entity.DocumentStatusSent,
		entity.SettledStatus(entity.DocTypeInvoice, decimal.New(60, 0), total))
	require.Equal(t, entity.DocumentStatusApproved,
		entity.SettledStatus(entity.DocTypeBill, decimal.New(60, 0), total))
	require.Equal(t, entity.DocumentStatusPaid,
		entity.SettledStatus(entity.DocTypeInvoice, total, total))

	// Overpayment is preserved, status is simply PAID.
	require.Equal(t, entity.DocumentStatusPaid,
		entity.SettledStatus(entity.DocTypeInvoice, decimal.New(120, 0), total))
}

func TestOpenStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.DocumentStatusSent, entity.OpenStatus(entity.DocTypeInvoice))
	require.Equal(t, entity.DocumentStatusApproved, entity.OpenStatus(entity.DocTypeBill))
}
