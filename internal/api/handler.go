package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/service"
)

// @title Settlement API
// @version 1.0
// @description Financial documents, payment settlement and storefront checkout
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type DocumentService interface {
	Create(ctx context.Context, docType entity.DocType, params service.CreateDocumentParams) (entity.FinancialDocument, error)
	Document(ctx context.Context, id uuid.UUID) (entity.FinancialDocument, error)
	Documents(ctx context.Context, docType entity.DocType, f entity.DocumentFilter) ([]entity.FinancialDocument, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentService interface {
	Apply(ctx context.Context, params service.ApplyPaymentParams) (entity.Payment, error)
	Reverse(ctx context.Context, paymentID uuid.UUID) (entity.Payment, error)
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, params service.CheckoutParams) (service.CheckoutResult, error)
	VerifyAndComplete(ctx context.Context, orderID uuid.UUID, reference string) (entity.Order, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
}

type MembershipService interface {
	HandleEvent(ctx context.Context, e entity.MembershipEvent) error
}

type Handler struct {
	documents  DocumentService
	payments   PaymentService
	checkout   CheckoutService
	membership MembershipService
}

func NewHandler(documents DocumentService, payments PaymentService, checkout CheckoutService, membership MembershipService) *Handler {
	return &Handler{
		documents:  documents,
		payments:   payments,
		checkout:   checkout,
		membership: membership,
	}
}

// HealthHandler reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type LineItemRequest struct {
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

type CreateDocumentRequest struct {
	CounterpartyID uuid.UUID         `json:"counterpartyId"`
	IssueDate      time.Time         `json:"issueDate"`
	DueDate        time.Time         `json:"dueDate"`
	Lines          []LineItemRequest `json:"lines"`
	Notes          string            `json:"notes"`
}

type LineItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	Amount         decimal.Decimal `json:"amount"`
}

type DocumentResponse struct {
	ID             uuid.UUID          `json:"id"`
	DocType        string             `json:"docType"`
	Number         string             `json:"number"`
	CounterpartyID uuid.UUID          `json:"counterpartyId"`
	IssueDate      time.Time          `json:"issueDate"`
	DueDate        time.Time          `json:"dueDate"`
	Lines          []LineItemResponse `json:"lines,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"taxAmount"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	PaidAmount     decimal.Decimal    `json:"paidAmount"`
	Status         string             `json:"status"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type DocumentsResponse struct {
	Items []DocumentResponse `json:"items"`
	Total int                `json:"total"`
}

// CreateInvoice creates an invoice
// @Summary Create invoice
// @Description Creates an invoice with derived totals and an allocated number
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateDocumentRequest body CreateDocumentRequest true "Invoice creation request"
// @Success 201 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse "Counterparty not found"
// @Failure 422 {object} ErrorResponse "Invalid line items"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Router /invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	h.createDocument(w, r, entity.DocTypeInvoice)
}

// CreateBill creates a bill
// @Summary Create bill
// @Description Creates a vendor bill with derived totals and an allocated number
// @Tags bills
// @Accept json
// @Produce json
// @Param CreateDocumentRequest body CreateDocumentRequest true "Bill creation request"
// @Success 201 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse "Counterparty not found"
// @Failure 422 {object} ErrorResponse "Invalid line items"
// @Failure 500 {object} ErrorResponse "Failed to create bill"
// @Router /bills [post]
// @Security BearerAuth
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	h.createDocument(w, r, entity.DocTypeBill)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request, docType entity.DocType) {
	ctx := r.Context()

	var req CreateDocumentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	lines := make([]entity.LineItem, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, entity.LineItem{
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			TaxRatePercent: l.TaxRatePercent,
		})
	}

	doc, err := h.documents.Create(ctx, docType, service.CreateDocumentParams{
		CounterpartyID: req.CounterpartyID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Lines:          lines,
		Notes:          req.Notes,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create document")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toDocumentResponse(doc))
}

// ListInvoices lists invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status"
// @Param counterparty_id query string false "Filter by counterparty"
// @Param issued_from query string false "Issued on or after (RFC 3339)"
// @Param issued_to query string false "Issued before (RFC 3339)"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Param sort_by query string false "number | issue_date | total_amount | created_at"
// @Param order_by query string false "asc | desc"
// @Success 200 {object} DocumentsResponse
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	h.listDocuments(w, r, entity.DocTypeInvoice)
}

// ListBills lists bills
// @Summary List bills
// @Tags bills
// @Produce json
// @Success 200 {object} DocumentsResponse
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Router /bills [get]
// @Security BearerAuth
func (h *Handler) ListBills(w http.ResponseWriter, r *http.Request) {
	h.listDocuments(w, r, entity.DocTypeBill)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request, docType entity.DocType) {
	ctx := r.Context()

	f, err := documentFilterFromQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid filter")
		return
	}

	docs, total, err := h.documents.Documents(ctx, docType, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list documents")
		return
	}

	items := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, toDocumentResponse(d))
	}

	SendJSON(ctx, w, http.StatusOK, DocumentsResponse{Items: items, Total: total})
}

// GetInvoice returns one invoice with its lines
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	h.getDocument(w, r, entity.DocTypeInvoice)
}

// GetBill returns one bill with its lines
// @Summary Get bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill id"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Router /bills/{id} [get]
// @Security BearerAuth
func (h *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	h.getDocument(w, r, entity.DocTypeBill)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request, docType entity.DocType) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	doc, err := h.documents.Document(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to get document")
		return
	}

	if doc.DocType != docType {
		SendJSONErr(ctx, w, http.StatusNotFound, entity.ErrNotFound, "Document not found")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toDocumentResponse(doc))
}

type UpdateDocumentStatusRequest struct {
	Status entity.DocumentStatus `json:"status"`
}

// UpdateDocumentStatus moves a document through its manual lifecycle
// @Summary Update document status
// @Tags documents
// @Accept json
// @Param id path string true "Document id"
// @Param UpdateDocumentStatusRequest body UpdateDocumentStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 422 {object} ErrorResponse "Invalid status"
// @Router /documents/{id}/status [patch]
// @Security BearerAuth
func (h *Handler) UpdateDocumentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	var req UpdateDocumentStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.documents.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to update document status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDocument soft-deletes a document
// @Summary Delete document
// @Tags documents
// @Param id path string true "Document id"
// @Success 204
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Paid document cannot be deleted"
// @Router /documents/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	err = h.documents.Delete(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ApplyPaymentRequest struct {
	Date      *time.Time           `json:"date"`
	Amount    decimal.Decimal      `json:"amount"`
	Method    entity.PaymentMethod `json:"method"`
	InvoiceID *uuid.UUID           `json:"invoiceId"`
	BillID    *uuid.UUID           `json:"billId"`
	Notes     string               `json:"notes"`
}

type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	InvoiceID *uuid.UUID      `json:"invoiceId,omitempty"`
	BillID    *uuid.UUID      `json:"billId,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PaymentsResponse struct {
	Items []PaymentResponse `json:"items"`
	Total int               `json:"total"`
}

// ApplyPayment records a payment and settles the referenced document
// @Summary Apply payment
// @Description Records a payment; the referenced document's paid amount and status move atomically
// @Tags payments
// @Accept json
// @Produce json
// @Param ApplyPaymentRequest body ApplyPaymentRequest true "Payment request"
// @Success 201 {object} PaymentResponse
// @Failure 404 {object} ErrorResponse "Referenced document not found"
// @Failure 422 {object} ErrorResponse "Invalid amount or references"
// @Failure 500 {object} ErrorResponse "Failed to apply payment"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ApplyPaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	params := service.ApplyPaymentParams{
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	}

	if req.Date != nil {
		params.Date = *req.Date
	}

	if req.InvoiceID != nil {
		params.InvoiceID = *req.InvoiceID
	}

	if req.BillID != nil {
		params.BillID = *req.BillID
	}

	p, err := h.payments.Apply(ctx, params)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to apply payment")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toPaymentResponse(p))
}

// ReversePayment voids a payment and rolls back its settlement
// @Summary Reverse payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found or already reversed"
// @Router /payments/{id} [delete]
// @Security BearerAuth
func (h *Handler) ReversePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	p, err := h.payments.Reverse(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to reverse payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toPaymentResponse(p))
}

// GetPayment returns one payment
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
// @Security BearerAuth
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	p, err := h.payments.Payment(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to get payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toPaymentResponse(p))
}

// ListPayments lists payments
// @Summary List payments
// @Tags payments
// @Produce json
// @Param method query string false "Filter by method"
// @Param invoice_id query string false "Filter by invoice"
// @Param bill_id query string false "Filter by bill"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size"
// @Success 200 {object} PaymentsResponse
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Router /payments [get]
// @Security BearerAuth
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := paymentFilterFromQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid filter")
		return
	}

	payments, total, err := h.payments.Payments(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list payments")
		return
	}

	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, toPaymentResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, PaymentsResponse{Items: items, Total: total})
}

type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress string                 `json:"shippingAddress"`
	Items           []CheckoutItemRequest  `json:"items"`
	Provider        entity.PaymentProvider `json:"provider"`
}

type OrderLineResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Number         string              `json:"number"`
	CustomerName   string              `json:"customerName"`
	CustomerEmail  string              `json:"customerEmail"`
	Lines          []OrderLineResponse `json:"lines,omitempty"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxAmount      decimal.Decimal     `json:"taxAmount"`
	ShippingAmount decimal.Decimal     `json:"shippingAmount"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"paymentStatus"`
	Provider       string              `json:"provider"`
	PaidAt         *time.Time          `json:"paidAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	RedirectURL string        `json:"redirectUrl,omitempty"`
}

// Checkout places a guest order
// @Summary Guest checkout
// @Description Prices the cart, creates the order with its stock decrement, and initializes payment
// @Tags shop
// @Accept json
// @Produce json
// @Param slug path string true "Store slug"
// @Param CheckoutRequest body CheckoutRequest true "Checkout request"
// @Success 201 {object} CheckoutResponse
// @Failure 404 {object} ErrorResponse "Store not found"
// @Failure 422 {object} ErrorResponse "Empty cart or unavailable product"
// @Failure 502 {object} ErrorResponse "Payment provider rejected the request"
// @Router /shop/{slug}/checkout [post]
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	items := make([]entity.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	res, err := h.checkout.Checkout(ctx, service.CheckoutParams{
		StoreSlug:       chi.URLParam(r, "slug"),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		Provider:        req.Provider,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Checkout failed")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CheckoutResponse{
		Order:       toOrderResponse(res.Order),
		RedirectURL: res.RedirectURL,
	})
}

// CheckoutCallback completes payment after the customer returns from the
// provider's hosted page. Providers disagree on the reference parameter name.
// @Summary Payment callback
// @Tags shop
// @Produce json
// @Param order_id query string true "Order id"
// @Param reference query string false "Provider reference (Paystack)"
// @Param transaction_id query string false "Provider reference (Flutterwave)"
// @Param session_id query string false "Provider reference (Stripe)"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 502 {object} ErrorResponse "Payment not confirmed by provider"
// @Router /shop/callback [get]
func (h *Handler) CheckoutCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(r.URL.Query().Get("order_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	reference := ""
	for _, param := range []string{"reference", "trxref", "transaction_id", "tx_ref", "session_id"} {
		if v := r.URL.Query().Get(param); v != "" {
			reference = v
			break
		}
	}

	order, err := h.checkout.VerifyAndComplete(ctx, orderID, reference)
	if err != nil {
		SendDomainErr(ctx, w, err, "Payment verification failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toOrderResponse(order))
}

// GetOrder returns one order for guest tracking
// @Summary Get order
// @Tags shop
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /shop/orders/{id} [get]
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	order, err := h.checkout.Order(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to get order")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toOrderResponse(order))
}

type MembershipWebhookRequest struct {
	Type         string `json:"type"`
	Organization struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"organization"`
	Member struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"member"`
}

// MembershipWebhook mirrors identity-provider membership events
// @Summary Membership webhook
// @Tags webhooks
// @Accept json
// @Param MembershipWebhookRequest body MembershipWebhookRequest true "Membership event"
// @Success 204
// @Failure 422 {object} ErrorResponse "Unknown event type"
// @Router /webhooks/membership [post]
// @Security ApiKeyAuth
func (h *Handler) MembershipWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MembershipWebhookRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.membership.HandleEvent(ctx, entity.MembershipEvent{
		Type:             entity.MembershipEventType(req.Type),
		OrganizationID:   req.Organization.ID,
		OrganizationName: req.Organization.Name,
		MemberID:         req.Member.ID,
		MemberEmail:      req.Member.Email,
		MemberName:       req.Member.Name,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to process membership event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDocumentResponse(doc entity.FinancialDocument) DocumentResponse {
	lines := make([]LineItemResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, LineItemResponse{
			ID:             l.ID,
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			TaxRatePercent: l.TaxRatePercent,
			Amount:         l.Amount,
		})
	}

	return DocumentResponse{
		ID:             doc.ID,
		DocType:        string(doc.DocType),
		Number:         doc.Number,
		CounterpartyID: doc.CounterpartyID,
		IssueDate:      doc.IssueDate,
		DueDate:        doc.DueDate,
		Lines:          lines,
		Subtotal:       doc.Subtotal,
		TaxAmount:      doc.TaxAmount,
		TotalAmount:    doc.TotalAmount,
		PaidAmount:     doc.PaidAmount,
		Status:         doc.Status.String(),
		Notes:          doc.Notes,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func toPaymentResponse(p entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:        p.ID,
		Number:    p.Number,
		Date:      p.Date,
		Amount:    p.Amount,
		Method:    p.Method.String(),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}

	if !p.InvoiceID.IsNil() {
		id := p.InvoiceID
		resp.InvoiceID = &id
	}

	if !p.BillID.IsNil() {
		id := p.BillID
		resp.BillID = &id
	}

	return resp
}

func toOrderResponse(order entity.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Amount:      l.Amount,
		})
	}

	return OrderResponse{
		ID:             order.ID,
		Number:         order.Number,
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		Lines:          lines,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ShippingAmount: order.ShippingAmount,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status.String(),
		PaymentStatus:  order.PaymentStatus.String(),
		Provider:       order.PaymentProvider.String(),
		PaidAt:         order.PaidAt,
		CreatedAt:      order.CreatedAt,
	}
}

func documentFilterFromQuery(r *http.Request) (entity.DocumentFilter, error) {
	q := r.URL.Query()

	var f entity.DocumentFilter

	if v := q.Get("status"); v != "" {
		status := entity.DocumentStatus(v)

		err := status.Validate()
		if err != nil {
			return f, err
		}

		f.Status = &status
	}

	if v := q.Get("counterparty_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return f, err
		}

		f.CounterpartyID = &id
	}

	if v := q.Get("issued_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, err
		}

		f.IssuedFrom = &t
	}

	if v := q.Get("issued_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, err
		}

		f.IssuedTo = &t
	}

	var err error

	f.Page, f.Limit, err = pagination(q.Get("page"), q.Get("limit"))
	if err != nil {
		return f, err
	}

	f.SortBy = entity.DocumentSortCol(q.Get("sort_by"))
	if !f.SortBy.IsValid() {
		f.SortBy = entity.DocumentSortByCreatedAt
	}

	f.OrderBy = entity.OrderByCol(q.Get("order_by"))
	if !f.OrderBy.IsValid() {
		f.OrderBy = entity.DESC
	}

	return f, nil
}

func paymentFilterFromQuery(r *http.Request) (entity.PaymentFilter, error) {
	q := r.URL.Query()

	var f entity.PaymentFilter

	if v := q.Get("method"); v != "" {
		method := entity.PaymentMethod(v)

		err := method.Validate()
		if err != nil {
			return f, err
		}

		f.Method = &method
	}

	if v := q.Get("invoice_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return f, err
		}

		f.InvoiceID = &id
	}

	if v := q.Get("bill_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return f, err
		}

		f.BillID = &id
	}

	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, err
		}

		f.DateFrom = &t
	}

	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, err
		}

		f.DateTo = &t
	}

	var err error

	f.Page, f.Limit, err = pagination(q.Get("page"), q.Get("limit"))
	if err != nil {
		return f, err
	}

	f.OrderBy = entity.OrderByCol(q.Get("order_by"))
	if !f.OrderBy.IsValid() {
		f.OrderBy = entity.DESC
	}

	return f, nil
}

func pagination(pageStr, limitStr string) (page, limit uint64, err error) {
	page = 1
	limit = 20

	if pageStr != "" {
		page, err = strconv.ParseUint(pageStr, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, fmt.Errorf("%w: invalid page %q", entity.ErrInvalidArgument, pageStr)
		}
	}

	if limitStr != "" {
		limit, err = strconv.ParseUint(limitStr, 10, 64)
		if err != nil || limit == 0 || limit > 100 {
			return 0, 0, fmt.Errorf("%w: invalid limit %q", entity.ErrInvalidArgument, limitStr)
		}
	}

	return page, limit, nil
}
