package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/internal/entity"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, "INV-000001", entity.FormatNumber(entity.DocTypeInvoice, 1))
	require.Equal(t, "BILL-000042", entity.FormatNumber(entity.DocTypeBill, 42))
	require.Equal(t, "PAY-000007", entity.FormatNumber(entity.DocTypePayment, 7))
	require.Equal(t, "ORD-123456", entity.FormatNumber(entity.DocTypeOrder, 123456))
	require.Equal(t, "ORD-1234567", entity.FormatNumber(entity.DocTypeOrder, 1234567))
}
