package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bizflow/settlement/internal/api"
	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/mocks"
	"github.com/bizflow/settlement/internal/service"
	"github.com/bizflow/settlement/pkg/security"
)

const webhookSecret = "test-secret"

type testServer struct {
	documents  *mocks.MockDocumentService
	payments   *mocks.MockPaymentService
	checkout   *mocks.MockCheckoutService
	membership *mocks.MockMembershipService
	auth       *mocks.MockAuthService
	srv        *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &testServer{
		documents:  mocks.NewMockDocumentService(ctrl),
		payments:   mocks.NewMockPaymentService(ctrl),
		checkout:   mocks.NewMockCheckoutService(ctrl),
		membership: mocks.NewMockMembershipService(ctrl),
		auth:       mocks.NewMockAuthService(ctrl),
	}

	h := api.NewHandler(ts.documents, ts.payments, ts.checkout, ts.membership)
	mw := api.NewMiddleware(ts.auth, false, "", webhookSecret)

	ts.srv = httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(ts.srv.Close)

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), TenantID: uuid.Must(uuid.NewV4())}
	ts.auth.EXPECT().User(gomock.Any(), "token").Return(user, nil)

	cpID := uuid.Must(uuid.NewV4())

	ts.documents.EXPECT().Create(gomock.Any(), entity.DocTypeInvoice, gomock.Any()).
		DoAndReturn(func(_ any, _ entity.DocType, params service.CreateDocumentParams) (entity.FinancialDocument, error) {
			require.Equal(t, cpID, params.CounterpartyID)
			require.Len(t, params.Lines, 1)
			require.Equal(t, "2", params.Lines[0].Quantity.String())

			return entity.FinancialDocument{
				ID:          uuid.Must(uuid.NewV4()),
				DocType:     entity.DocTypeInvoice,
				Number:      "INV-000001",
				Subtotal:    decimal.New(100, 0),
				TotalAmount: decimal.New(116, 0),
				Status:      entity.DocumentStatusDraft,
			}, nil
		})

	resp := ts.do(t, http.MethodPost, "/api/invoices", "token", api.CreateDocumentRequest{
		CounterpartyID: cpID,
		IssueDate:      time.Now(),
		DueDate:        time.Now().Add(24 * time.Hour),
		Lines: []api.LineItemRequest{
			{Description: "consulting", Quantity: decimal.New(2, 0), UnitPrice: decimal.New(50, 0), TaxRatePercent: decimal.New(16, 0)},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out api.DocumentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "INV-000001", out.Number)
	require.Equal(t, "DRAFT", out.Status)
}

func TestHandler_CreateInvoice_Unauthorized(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/invoices", "", api.CreateDocumentRequest{})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_GetInvoice_WrongType(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), TenantID: uuid.Must(uuid.NewV4())}
	ts.auth.EXPECT().User(gomock.Any(), "token").Return(user, nil)

	id := uuid.Must(uuid.NewV4())

	ts.documents.EXPECT().Document(gomock.Any(), id).
		Return(entity.FinancialDocument{ID: id, DocType: entity.DocTypeBill}, nil)

	resp := ts.do(t, http.MethodGet, "/api/invoices/"+id.String(), "token", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ApplyPayment(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), TenantID: uuid.Must(uuid.NewV4())}
	ts.auth.EXPECT().User(gomock.Any(), "token").Return(user, nil)

	invoiceID := uuid.Must(uuid.NewV4())

	ts.payments.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params service.ApplyPaymentParams) (entity.Payment, error) {
			require.Equal(t, "60", params.Amount.String())
			require.Equal(t, invoiceID, params.InvoiceID)

			return entity.Payment{
				ID:        uuid.Must(uuid.NewV4()),
				Number:    "PAY-000001",
				Amount:    params.Amount,
				Method:    params.Method,
				InvoiceID: invoiceID,
			}, nil
		})

	resp := ts.do(t, http.MethodPost, "/api/payments", "token", api.ApplyPaymentRequest{
		Amount:    decimal.New(60, 0),
		Method:    entity.PaymentMethodBankTransfer,
		InvoiceID: &invoiceID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out api.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "PAY-000001", out.Number)
	require.NotNil(t, out.InvoiceID)
}

func TestHandler_ApplyPayment_InvalidAmount(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), TenantID: uuid.Must(uuid.NewV4())}
	ts.auth.EXPECT().User(gomock.Any(), "token").Return(user, nil)

	ts.payments.EXPECT().Apply(gomock.Any(), gomock.Any()).
		Return(entity.Payment{}, entity.ErrInvalidArgument)

	resp := ts.do(t, http.MethodPost, "/api/payments", "token", api.ApplyPaymentRequest{
		Amount: decimal.Zero,
		Method: entity.PaymentMethodCash,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	ts.checkout.EXPECT().Checkout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params service.CheckoutParams) (service.CheckoutResult, error) {
			require.Equal(t, "acme", params.StoreSlug)
			require.Equal(t, entity.ProviderPaystack, params.Provider)
			require.Len(t, params.Items, 1)

			return service.CheckoutResult{
				Order: entity.Order{
					ID:     uuid.Must(uuid.NewV4()),
					Number: "ORD-000001",
					Status: entity.OrderStatusPending,
				},
				RedirectURL: "https://checkout.paystack.com/ref",
			}, nil
		})

	resp := ts.do(t, http.MethodPost, "/api/shop/acme/checkout", "", api.CheckoutRequest{
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		Items:         []api.CheckoutItemRequest{{ProductID: uuid.Must(uuid.NewV4()), Quantity: 2}},
		Provider:      entity.ProviderPaystack,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out api.CheckoutResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "ORD-000001", out.Order.Number)
	require.Equal(t, "https://checkout.paystack.com/ref", out.RedirectURL)
}

func TestHandler_CheckoutCallback_ReferenceParams(t *testing.T) {
	t.Parallel()

	for _, param := range []string{"reference", "trxref", "transaction_id", "session_id"} {
		param := param
		t.Run(param, func(t *testing.T) {
			t.Parallel()

			ts := newTestServer(t)

			orderID := uuid.Must(uuid.NewV4())

			ts.checkout.EXPECT().VerifyAndComplete(gomock.Any(), orderID, "prov_ref").
				Return(entity.Order{ID: orderID, PaymentStatus: entity.OrderPaymentStatusPaid}, nil)

			resp := ts.do(t, http.MethodGet, "/api/shop/callback?order_id="+orderID.String()+"&"+param+"=prov_ref", "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var out api.OrderResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			require.Equal(t, "PAID", out.PaymentStatus)
		})
	}
}

func TestHandler_CheckoutCallback_GatewayError(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	orderID := uuid.Must(uuid.NewV4())

	ts.checkout.EXPECT().VerifyAndComplete(gomock.Any(), orderID, "").
		Return(entity.Order{}, entity.ErrGateway)

	resp := ts.do(t, http.MethodGet, "/api/shop/callback?order_id="+orderID.String(), "", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandler_MembershipWebhook(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	ts.membership.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e entity.MembershipEvent) error {
			require.Equal(t, entity.MembershipMemberAdded, e.Type)
			require.Equal(t, "org_123", e.OrganizationID)
			require.Equal(t, "mem_456", e.MemberID)
			return nil
		})

	body := []byte(`{"type":"member.added","organization":{"id":"org_123","name":"Acme"},"member":{"id":"mem_456","email":"new@example.com"}}`)

	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+"/api/webhooks/membership", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-Signature", security.SignPayload([]byte(webhookSecret), body))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_MembershipWebhook_BadSignature(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	body := []byte(`{"type":"member.added","organization":{"id":"org_123"}}`)

	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+"/api/webhooks/membership", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-Signature", "deadbeef")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
