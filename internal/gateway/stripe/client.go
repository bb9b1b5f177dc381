package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/pkg/config"
	"github.com/bizflow/settlement/pkg/transport"
)

// Client drives Stripe hosted checkout sessions. The session id is the
// payment reference carried through the callback.
type Client struct {
	cfg config.Stripe
	c   *http.Client
}

func NewClient(cfg config.Stripe) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
	Error         struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Initialize(ctx context.Context, req gateway.InitializeRequest) (gateway.InitializeResult, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", req.CustomerEmail)
	form.Set("client_reference_id", req.OrderID.String())
	form.Set("success_url", req.CallbackURL)
	form.Set("cancel_url", req.CallbackURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(req.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(gateway.MinorUnits(req.Amount), 10))
	form.Set("line_items[0][price_data][product_data][name]", "Order "+req.OrderNumber)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(c.cfg.SecretKey, "")

	resp, err := c.c.Do(httpReq)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("%w: %s", entity.ErrGateway, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("read response: %w", err)
	}

	var respData sessionResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return gateway.InitializeResult{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return gateway.InitializeResult{}, fmt.Errorf("%w: stripe session: %s", entity.ErrGateway, respData.Error.Message)
	}

	return gateway.InitializeResult{
		Reference:   respData.ID,
		RedirectURL: respData.URL,
	}, nil
}

func (c *Client) Verify(ctx context.Context, reference string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/checkout/sessions/"+url.PathEscape(reference), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.SetBasicAuth(c.cfg.SecretKey, "")

	resp, err := c.c.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrGateway, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var respData sessionResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || respData.PaymentStatus != "paid" {
		return fmt.Errorf("%w: stripe verify %q: %s", entity.ErrGateway, reference, respData.PaymentStatus)
	}

	return nil
}
