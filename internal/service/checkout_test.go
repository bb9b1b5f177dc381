package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/internal/mocks"
	"github.com/bizflow/settlement/internal/service"
)

const testBaseURL = "https://shop.example.com"

func testStore() entity.Store {
	return entity.Store{
		ID:              uuid.Must(uuid.NewV4()),
		TenantID:        uuid.Must(uuid.NewV4()),
		Slug:            "acme",
		Currency:        "KES",
		TaxEnabled:      true,
		ShippingEnabled: true,
		ShippingFee:     decimal.New(10, 0),
		Active:          true,
	}
}

func TestCheckoutService_Checkout_COD(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	store := testStore()

	productA := entity.Product{ID: uuid.Must(uuid.NewV4()), StoreID: store.ID, Name: "mug", Price: decimal.New(5, 0), StockQuantity: 10, Active: true}
	productB := entity.Product{ID: uuid.Must(uuid.NewV4()), StoreID: store.ID, Name: "shirt", Price: decimal.New(10, 0), StockQuantity: 3, Active: true}

	ctx := context.Background()

	repo.EXPECT().ActiveStoreBySlug(ctx, "acme").Return(store, nil)
	repo.EXPECT().ActiveProductsByIDs(ctx, store.ID, gomock.Any()).
		Return([]entity.Product{productA, productB}, nil)

	repo.EXPECT().CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, order entity.Order) (entity.Order, error) {
			require.Equal(t, "20", order.Subtotal.String())
			require.Equal(t, "3.2", order.TaxAmount.String())
			require.Equal(t, "10", order.ShippingAmount.String())
			require.Equal(t, "33.2", order.TotalAmount.String())
			require.Equal(t, entity.OrderStatusPending, order.Status)
			require.Equal(t, entity.OrderPaymentStatusPending, order.PaymentStatus)
			require.Len(t, order.Lines, 2)
			require.Equal(t, "mug", order.Lines[0].ProductName)

			order.ID = uuid.Must(uuid.NewV4())
			order.Number = "ORD-000001"

			return order, nil
		})
	repo.EXPECT().MarkOrderConfirmed(ctx, gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendOrderConfirmation(ctx, gomock.Any())

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	res, err := s.Checkout(ctx, service.CheckoutParams{
		StoreSlug:     "acme",
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		Items: []entity.CartItem{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
		Provider: entity.ProviderCOD,
	})
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusConfirmed, res.Order.Status)
	require.Empty(t, res.RedirectURL)
}

func TestCheckoutService_Checkout_HostedProvider(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store := testStore()
	product := entity.Product{ID: uuid.Must(uuid.NewV4()), StoreID: store.ID, Name: "mug", Price: decimal.New(20, 0), Active: true}

	ctx := context.Background()

	repo.EXPECT().ActiveStoreBySlug(ctx, "acme").Return(store, nil)
	repo.EXPECT().ActiveProductsByIDs(ctx, store.ID, gomock.Any()).Return([]entity.Product{product}, nil)
	repo.EXPECT().CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, order entity.Order) (entity.Order, error) {
			order.ID = uuid.Must(uuid.NewV4())
			order.Number = "ORD-000002"
			return order, nil
		})

	providers.EXPECT().Provider(entity.ProviderPaystack).Return(provider, nil)
	provider.EXPECT().Initialize(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.InitializeRequest) (gateway.InitializeResult, error) {
			require.Equal(t, "KES", req.Currency)
			require.Equal(t, "33.2", req.Amount.String())
			require.Contains(t, req.CallbackURL, testBaseURL+"/api/shop/callback?order_id=")

			return gateway.InitializeResult{
				Reference:   "ps_ref_123",
				RedirectURL: "https://checkout.paystack.com/ps_ref_123",
			}, nil
		})
	repo.EXPECT().SetOrderPaymentReference(ctx, gomock.Any(), "ps_ref_123", gomock.Any()).Return(nil)

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	res, err := s.Checkout(ctx, service.CheckoutParams{
		StoreSlug:     "acme",
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		Items:         []entity.CartItem{{ProductID: product.ID, Quantity: 1}},
		Provider:      entity.ProviderPaystack,
	})
	require.NoError(t, err)
	require.Equal(t, "https://checkout.paystack.com/ps_ref_123", res.RedirectURL)
	require.Equal(t, "ps_ref_123", res.Order.PaymentReference)
}

func TestCheckoutService_Checkout_ProviderFailureMarksOrderFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store := testStore()
	product := entity.Product{ID: uuid.Must(uuid.NewV4()), StoreID: store.ID, Name: "mug", Price: decimal.New(20, 0), Active: true}

	ctx := context.Background()

	repo.EXPECT().ActiveStoreBySlug(ctx, "acme").Return(store, nil)
	repo.EXPECT().ActiveProductsByIDs(ctx, store.ID, gomock.Any()).Return([]entity.Product{product}, nil)
	repo.EXPECT().CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, order entity.Order) (entity.Order, error) {
			order.ID = uuid.Must(uuid.NewV4())
			return order, nil
		})

	providers.EXPECT().Provider(entity.ProviderStripe).Return(provider, nil)
	provider.EXPECT().Initialize(ctx, gomock.Any()).
		Return(gateway.InitializeResult{}, entity.ErrGateway)
	repo.EXPECT().MarkOrderPaymentFailed(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	_, err := s.Checkout(ctx, service.CheckoutParams{
		StoreSlug:     "acme",
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		Items:         []entity.CartItem{{ProductID: product.ID, Quantity: 1}},
		Provider:      entity.ProviderStripe,
	})
	require.ErrorIs(t, err, entity.ErrGateway)
}

func TestCheckoutService_Checkout_UnavailableProduct(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	store := testStore()

	ctx := context.Background()

	repo.EXPECT().ActiveStoreBySlug(ctx, "acme").Return(store, nil)
	repo.EXPECT().ActiveProductsByIDs(ctx, store.ID, gomock.Any()).Return(nil, nil)

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	_, err := s.Checkout(ctx, service.CheckoutParams{
		StoreSlug:     "acme",
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		Items:         []entity.CartItem{{ProductID: uuid.Must(uuid.NewV4()), Quantity: 1}},
		Provider:      entity.ProviderCOD,
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestCheckoutService_VerifyAndComplete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	store := testStore()
	orderID := uuid.Must(uuid.NewV4())

	ctx := context.Background()

	repo.EXPECT().Order(ctx, orderID).Return(entity.Order{
		ID:               orderID,
		StoreID:          store.ID,
		Number:           "ORD-000003",
		PaymentStatus:    entity.OrderPaymentStatusPending,
		PaymentProvider:  entity.ProviderPaystack,
		PaymentReference: "ps_ref_123",
	}, nil)
	providers.EXPECT().Provider(entity.ProviderPaystack).Return(provider, nil)
	provider.EXPECT().Verify(ctx, "ps_ref_123").Return(nil)
	repo.EXPECT().MarkOrderPaid(ctx, orderID, gomock.Any()).Return(nil)
	repo.EXPECT().StoreByID(ctx, store.ID).Return(store, nil)
	producer.EXPECT().SendOrderConfirmation(ctx, gomock.Any())

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	order, err := s.VerifyAndComplete(ctx, orderID, "")
	require.NoError(t, err)
	require.Equal(t, entity.OrderPaymentStatusPaid, order.PaymentStatus)
	require.Equal(t, entity.OrderStatusConfirmed, order.Status)
	require.NotNil(t, order.PaidAt)
}

func TestCheckoutService_VerifyAndComplete_AlreadyPaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	orderID := uuid.Must(uuid.NewV4())

	ctx := context.Background()

	repo.EXPECT().Order(ctx, orderID).Return(entity.Order{
		ID:              orderID,
		PaymentStatus:   entity.OrderPaymentStatusPaid,
		PaymentProvider: entity.ProviderPaystack,
	}, nil)

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	order, err := s.VerifyAndComplete(ctx, orderID, "ps_ref_123")
	require.NoError(t, err)
	require.Equal(t, entity.OrderPaymentStatusPaid, order.PaymentStatus)
}

func TestCheckoutService_VerifyAndComplete_VerificationFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	orderID := uuid.Must(uuid.NewV4())

	ctx := context.Background()

	repo.EXPECT().Order(ctx, orderID).Return(entity.Order{
		ID:               orderID,
		PaymentStatus:    entity.OrderPaymentStatusPending,
		PaymentProvider:  entity.ProviderFlutterwave,
		PaymentReference: "flw_ref",
	}, nil)
	providers.EXPECT().Provider(entity.ProviderFlutterwave).Return(provider, nil)
	provider.EXPECT().Verify(ctx, "flw_ref").Return(entity.ErrGateway)

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	_, err := s.VerifyAndComplete(ctx, orderID, "")
	require.ErrorIs(t, err, entity.ErrGateway)
}

func TestCheckoutService_ExpireStaleOrders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStorefrontRepository(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := context.Background()

	repo.EXPECT().FailStaleOrders(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff, updatedAt time.Time) error {
			require.WithinDuration(t, time.Now().UTC().Add(-168*time.Hour), cutoff, time.Minute)
			return nil
		})

	s := service.NewCheckoutService(repo, providers, producer, testBaseURL, 168*time.Hour)

	require.NoError(t, s.ExpireStaleOrders(ctx))
}
