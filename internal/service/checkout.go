package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=checkout.go -destination=../mocks/checkout.go -package=mocks

type StorefrontRepository interface {
	ActiveStoreBySlug(ctx context.Context, slug string) (entity.Store, error)
	StoreByID(ctx context.Context, id uuid.UUID) (entity.Store, error)
	ActiveProductsByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	SetOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string, updatedAt time.Time) error
	MarkOrderPaymentFailed(ctx context.Context, id uuid.UUID, providerErr string, updatedAt time.Time) error
	MarkOrderConfirmed(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	MarkOrderPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	FailStaleOrders(ctx context.Context, cutoff, updatedAt time.Time) error
}

// Providers resolves a payment gateway by its tag.
type Providers interface {
	Provider(tag entity.PaymentProvider) (gateway.Provider, error)
}

// CheckoutService runs the guest storefront flow: price the cart, persist the
// order with its stock decrement, then hand off to the payment provider.
// Provider calls happen outside any database transaction.
type CheckoutService struct {
	repo       StorefrontRepository
	providers  Providers
	producer   Producer
	baseURL    string
	staleAfter time.Duration
}

func NewCheckoutService(
	repo StorefrontRepository,
	providers Providers,
	producer Producer,
	baseURL string,
	staleAfter time.Duration,
) *CheckoutService {
	return &CheckoutService{
		repo:       repo,
		providers:  providers,
		producer:   producer,
		baseURL:    baseURL,
		staleAfter: staleAfter,
	}
}

type CheckoutParams struct {
	StoreSlug       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Items           []entity.CartItem
	Provider        entity.PaymentProvider
}

type CheckoutResult struct {
	Order entity.Order
	// RedirectURL is where the customer completes payment. Empty for cash on
	// delivery.
	RedirectURL string
}

func (s *CheckoutService) Checkout(ctx context.Context, params CheckoutParams) (CheckoutResult, error) {
	err := entity.ValidateCart(params.Items)
	if err != nil {
		return CheckoutResult{}, err
	}

	err = params.Provider.Validate()
	if err != nil {
		return CheckoutResult{}, err
	}

	if params.CustomerName == "" || params.CustomerEmail == "" {
		return CheckoutResult{}, fmt.Errorf("%w: customer name and email are required", entity.ErrInvalidArgument)
	}

	store, err := s.repo.ActiveStoreBySlug(ctx, params.StoreSlug)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("store %q: %w", params.StoreSlug, err)
	}

	lines, err := s.priceCart(ctx, store, params.Items)
	if err != nil {
		return CheckoutResult{}, err
	}

	subtotal, tax, shipping, total, lines := entity.ComputeOrderTotals(lines, store)

	for i := range lines {
		lines[i].ID = uuid.Must(uuid.NewV4())
	}

	now := time.Now().UTC()

	order := entity.Order{
		ID:              uuid.Must(uuid.NewV4()),
		StoreID:         store.ID,
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		CustomerPhone:   params.CustomerPhone,
		ShippingAddress: params.ShippingAddress,
		Lines:           lines,
		Subtotal:        subtotal,
		TaxAmount:       tax,
		ShippingAmount:  shipping,
		TotalAmount:     total,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.OrderPaymentStatusPending,
		PaymentProvider: params.Provider,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("create order: %w", err)
	}

	if params.Provider == entity.ProviderCOD {
		err = s.repo.MarkOrderConfirmed(ctx, order.ID, time.Now().UTC())
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("confirm order: %w", err)
		}

		order.Status = entity.OrderStatusConfirmed

		s.notifyConfirmed(ctx, order, store)

		return CheckoutResult{Order: order}, nil
	}

	return s.initializePayment(ctx, store, order)
}

// priceCart resolves cart items against live products, all-or-nothing. Unit
// prices and names are snapshotted onto the order lines.
func (s *CheckoutService) priceCart(
	ctx context.Context,
	store entity.Store,
	items []entity.CartItem,
) ([]entity.OrderLineItem, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.repo.ActiveProductsByIDs(ctx, store.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]entity.OrderLineItem, 0, len(items))

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s is not available in this store", entity.ErrInvalidArgument, item.ProductID)
		}

		lines = append(lines, entity.OrderLineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    item.Quantity,
		})
	}

	return lines, nil
}

// initializePayment calls the hosted provider after the order is committed.
// A provider failure marks the order FAILED but keeps it on record.
func (s *CheckoutService) initializePayment(
	ctx context.Context,
	store entity.Store,
	order entity.Order,
) (CheckoutResult, error) {
	provider, err := s.providers.Provider(order.PaymentProvider)
	if err != nil {
		return CheckoutResult{}, err
	}

	res, err := provider.Initialize(ctx, gateway.InitializeRequest{
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		Amount:        order.TotalAmount,
		Currency:      store.Currency,
		CustomerEmail: order.CustomerEmail,
		CallbackURL:   fmt.Sprintf("%s/api/shop/callback?order_id=%s", s.baseURL, order.ID),
	})
	if err != nil {
		markErr := s.repo.MarkOrderPaymentFailed(ctx, order.ID, err.Error(), time.Now().UTC())
		if markErr != nil {
			return CheckoutResult{}, fmt.Errorf("mark order failed after %q: %w", err, markErr)
		}

		return CheckoutResult{}, fmt.Errorf("initialize payment: %w", err)
	}

	if res.Reference != "" {
		err = s.repo.SetOrderPaymentReference(ctx, order.ID, res.Reference, time.Now().UTC())
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("store payment reference: %w", err)
		}

		order.PaymentReference = res.Reference
	}

	return CheckoutResult{
		Order:       order,
		RedirectURL: res.RedirectURL,
	}, nil
}

// VerifyAndComplete confirms payment with the provider after the customer
// returns from the hosted page. Re-verifying a PAID order is a no-op: the
// provider is not called again.
func (s *CheckoutService) VerifyAndComplete(ctx context.Context, orderID uuid.UUID, reference string) (entity.Order, error) {
	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}

	if order.PaymentStatus == entity.OrderPaymentStatusPaid {
		return order, nil
	}

	provider, err := s.providers.Provider(order.PaymentProvider)
	if err != nil {
		return entity.Order{}, err
	}

	if reference == "" {
		reference = order.PaymentReference
	}

	err = provider.Verify(ctx, reference)
	if err != nil {
		return entity.Order{}, fmt.Errorf("verify payment: %w", err)
	}

	now := time.Now().UTC()

	err = s.repo.MarkOrderPaid(ctx, order.ID, now)
	if err != nil {
		return entity.Order{}, fmt.Errorf("mark order paid: %w", err)
	}

	order.PaymentStatus = entity.OrderPaymentStatusPaid
	order.Status = entity.OrderStatusConfirmed
	order.PaidAt = &now

	store, err := s.repo.StoreByID(ctx, order.StoreID)
	if err == nil {
		s.notifyConfirmed(ctx, order, store)
	}

	return order, nil
}

func (s *CheckoutService) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	return s.repo.Order(ctx, id)
}

// ExpireStaleOrders fails PENDING orders whose checkout was abandoned. Wired
// as a periodic job.
func (s *CheckoutService) ExpireStaleOrders(ctx context.Context) error {
	now := time.Now().UTC()
	return s.repo.FailStaleOrders(ctx, now.Add(-s.staleAfter), now)
}

func (s *CheckoutService) notifyConfirmed(ctx context.Context, order entity.Order, store entity.Store) {
	s.producer.SendOrderConfirmation(ctx, broker.OrderConfirmationEvent{
		OrderID:       order.ID.String(),
		OrderNumber:   order.Number,
		StoreID:       store.ID.String(),
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		Currency:      store.Currency,
	})
}
