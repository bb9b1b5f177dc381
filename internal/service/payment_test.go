package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/mocks"
	"github.com/bizflow/settlement/internal/service"
)

func TestPaymentService_Apply_PartialKeepsDocumentOpen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	invoiceID := uuid.Must(uuid.NewV4())

	repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Payment, entity.FinancialDocument, error) {
			require.Equal(t, user.TenantID, p.TenantID)
			require.Equal(t, invoiceID, p.InvoiceID)
			require.Equal(t, "60", p.Amount.String())

			p.ID = uuid.Must(uuid.NewV4())
			p.Number = "PAY-000001"

			return p, entity.FinancialDocument{
				ID:          invoiceID,
				DocType:     entity.DocTypeInvoice,
				TotalAmount: decimal.New(100, 0),
				PaidAmount:  decimal.New(60, 0),
				Status:      entity.DocumentStatusSent,
			}, nil
		})
	audit.EXPECT().CreateAuditRecord(ctx, gomock.Any()).Return(nil)

	s := service.NewPaymentService(repo, audit, producer)

	p, err := s.Apply(ctx, service.ApplyPaymentParams{
		Amount:    decimal.New(60, 0),
		Method:    entity.PaymentMethodBankTransfer,
		InvoiceID: invoiceID,
	})
	require.NoError(t, err)
	require.Equal(t, "PAY-000001", p.Number)
}

func TestPaymentService_Apply_SettlementPublishesEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	invoiceID := uuid.Must(uuid.NewV4())

	repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Payment, entity.FinancialDocument, error) {
			p.ID = uuid.Must(uuid.NewV4())
			p.Number = "PAY-000002"

			return p, entity.FinancialDocument{
				ID:          invoiceID,
				TenantID:    user.TenantID,
				DocType:     entity.DocTypeInvoice,
				Number:      "INV-000001",
				TotalAmount: decimal.New(100, 0),
				PaidAmount:  decimal.New(100, 0),
				Status:      entity.DocumentStatusPaid,
			}, nil
		})
	audit.EXPECT().CreateAuditRecord(ctx, gomock.Any()).Return(nil)
	producer.EXPECT().SendDocumentSettled(ctx, gomock.Any())

	s := service.NewPaymentService(repo, audit, producer)

	_, err := s.Apply(ctx, service.ApplyPaymentParams{
		Amount:    decimal.New(40, 0),
		Method:    entity.PaymentMethodCard,
		InvoiceID: invoiceID,
	})
	require.NoError(t, err)
}

func TestPaymentService_Apply_Invalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := entity.CtxWithUser(context.Background(), testUser())

	s := service.NewPaymentService(repo, audit, producer)

	_, err := s.Apply(ctx, service.ApplyPaymentParams{
		Amount: decimal.Zero,
		Method: entity.PaymentMethodCash,
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = s.Apply(ctx, service.ApplyPaymentParams{
		Amount:    decimal.New(10, 0),
		Method:    entity.PaymentMethodCash,
		InvoiceID: uuid.Must(uuid.NewV4()),
		BillID:    uuid.Must(uuid.NewV4()),
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestPaymentService_Reverse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	paymentID := uuid.Must(uuid.NewV4())

	repo.EXPECT().ReversePayment(ctx, user.TenantID, paymentID, user.ID, gomock.Any()).
		Return(
			entity.Payment{ID: paymentID, Amount: decimal.New(40, 0)},
			entity.FinancialDocument{
				DocType:    entity.DocTypeInvoice,
				PaidAmount: decimal.New(60, 0),
				Status:     entity.DocumentStatusSent,
			},
			nil,
		)
	audit.EXPECT().CreateAuditRecord(ctx, gomock.Any()).Return(nil)

	s := service.NewPaymentService(repo, audit, producer)

	p, err := s.Reverse(ctx, paymentID)
	require.NoError(t, err)
	require.Equal(t, paymentID, p.ID)
}

func TestPaymentService_Reverse_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	paymentID := uuid.Must(uuid.NewV4())

	repo.EXPECT().ReversePayment(ctx, user.TenantID, paymentID, user.ID, gomock.Any()).
		Return(entity.Payment{}, entity.FinancialDocument{}, entity.ErrNotFound)

	s := service.NewPaymentService(repo, audit, producer)

	_, err := s.Reverse(ctx, paymentID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
