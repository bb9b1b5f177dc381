// Package cod is the cash-on-delivery provider: settlement happens outside
// the system, so both gateway calls trivially succeed.
package cod

import (
	"context"

	"github.com/bizflow/settlement/internal/gateway"
)

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) Initialize(_ context.Context, _ gateway.InitializeRequest) (gateway.InitializeResult, error) {
	return gateway.InitializeResult{}, nil
}

func (p *Provider) Verify(_ context.Context, _ string) error {
	return nil
}
