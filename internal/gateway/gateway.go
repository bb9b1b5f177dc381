// Package gateway hides provider-specific payment APIs behind a uniform
// initialize/verify capability interface. New providers plug into the
// registry without touching the checkout engine.
package gateway

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/bizflow/settlement/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=gateway.go -destination=../mocks/gateway.go -package=mocks

type InitializeRequest struct {
	OrderID       uuid.UUID
	OrderNumber   string
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	CallbackURL   string
}

type InitializeResult struct {
	// Reference identifies the payment at the provider. Empty for providers
	// that settle without one (cash on delivery).
	Reference string
	// RedirectURL is where the customer completes payment. Empty when no
	// redirect is needed.
	RedirectURL string
}

type Provider interface {
	Initialize(ctx context.Context, req InitializeRequest) (InitializeResult, error)
	Verify(ctx context.Context, reference string) error
}

// Registry selects a Provider by its tag.
type Registry struct {
	providers map[entity.PaymentProvider]Provider
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[entity.PaymentProvider]Provider),
	}
}

func (r *Registry) Register(tag entity.PaymentProvider, p Provider) *Registry {
	r.providers[tag] = p
	return r
}

func (r *Registry) Provider(tag entity.PaymentProvider) (Provider, error) {
	p, ok := r.providers[tag]
	if !ok {
		return nil, fmt.Errorf("%w: no provider registered for %q", entity.ErrGateway, tag)
	}

	return p, nil
}

// MinorUnits converts a major-unit amount to the smallest currency unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.New(100, 0)).Round(0).IntPart()
}
