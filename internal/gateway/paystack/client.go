package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/pkg/config"
	"github.com/bizflow/settlement/pkg/transport"
)

type Client struct {
	cfg config.Paystack
	c   *http.Client
}

func NewClient(cfg config.Paystack) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"` // Minor units.
	Currency    string `json:"currency"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req gateway.InitializeRequest) (gateway.InitializeResult, error) {
	reqData := initializeRequest{
		Email:       req.CustomerEmail,
		Amount:      gateway.MinorUnits(req.Amount),
		Currency:    req.Currency,
		Reference:   req.OrderID.String(),
		CallbackURL: req.CallbackURL,
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/transaction/initialize", bytes.NewReader(b))
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.c.Do(httpReq)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("%w: %s", entity.ErrGateway, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("read response: %w", err)
	}

	var respData initializeResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !respData.Status {
		return gateway.InitializeResult{}, fmt.Errorf("%w: paystack initialize: %s", entity.ErrGateway, respData.Message)
	}

	return gateway.InitializeResult{
		Reference:   respData.Data.Reference,
		RedirectURL: respData.Data.AuthorizationURL,
	}, nil
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, reference string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.c.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrGateway, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var respData verifyResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !respData.Status || respData.Data.Status != "success" {
		return fmt.Errorf("%w: paystack verify %q: %s", entity.ErrGateway, reference, respData.Message)
	}

	return nil
}
