package gateway_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/internal/gateway/cod"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := gateway.NewRegistry().Register(entity.ProviderCOD, cod.New())

	p, err := r.Provider(entity.ProviderCOD)
	require.NoError(t, err)

	result, err := p.Initialize(context.Background(), gateway.InitializeRequest{})
	require.NoError(t, err)
	require.Empty(t, result.RedirectURL)
	require.NoError(t, p.Verify(context.Background(), ""))

	_, err = r.Provider(entity.ProviderStripe)
	require.ErrorIs(t, err, entity.ErrGateway)
}

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 3320, gateway.MinorUnits(decimal.RequireFromString("33.20")))
	require.EqualValues(t, 100, gateway.MinorUnits(decimal.New(1, 0)))
	require.EqualValues(t, 0, gateway.MinorUnits(decimal.Zero))
}
