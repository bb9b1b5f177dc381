package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/pkg/config"
	"github.com/bizflow/settlement/pkg/transport"
)

type Client struct {
	cfg config.Flutterwave
	c   *http.Client
}

func NewClient(cfg config.Flutterwave) *Client {
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
	TxRef       string   `json:"tx_ref"`
	Amount      string   `json:"amount"` // Major units.
	Currency    string   `json:"currency"`
	RedirectURL string   `json:"redirect_url"`
	Customer    customer `json:"customer"`
}

type customer struct {
	Email string `json:"email"`
}

type initializeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req gateway.InitializeRequest) (gateway.InitializeResult, error) {
	reqData := initializeRequest{
		TxRef:       req.OrderID.String(),
		Amount:      req.Amount.StringFixed(2),
		Currency:    req.Currency,
		RedirectURL: req.CallbackURL,
		Customer:    customer{Email: req.CustomerEmail},
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/payments", bytes.NewReader(b))
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

	if resp.StatusCode != http.StatusOK || respData.Status != "success" {
		return gateway.InitializeResult{}, fmt.Errorf("%w: flutterwave initialize: %s", entity.ErrGateway, respData.Message)
	}

	return gateway.InitializeResult{
		Reference:   reqData.TxRef,
		RedirectURL: respData.Data.Link,
	}, nil
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, reference string) error {
	reqURL := c.cfg.BaseURL + "/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(reference)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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

	if resp.StatusCode != http.StatusOK || respData.Status != "success" || respData.Data.Status != "successful" {
		return fmt.Errorf("%w: flutterwave verify %q: %s", entity.ErrGateway, reference, respData.Message)
	}

	return nil
}
