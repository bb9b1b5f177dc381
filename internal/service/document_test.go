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
	"github.com/bizflow/settlement/internal/mocks"
	"github.com/bizflow/settlement/internal/service"
)

func testUser() entity.User {
	return entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		TenantID: uuid.Must(uuid.NewV4()),
		Role:     entity.RoleAccountant,
	}
}

func TestDocumentService_Create(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	cpID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Counterparty(ctx, user.TenantID, cpID).
		Return(entity.Counterparty{ID: cpID, TenantID: user.TenantID, Kind: entity.CounterpartyCustomer}, nil)

	repo.EXPECT().CreateDocument(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, doc entity.FinancialDocument) (entity.FinancialDocument, error) {
			require.Equal(t, user.TenantID, doc.TenantID)
			require.Equal(t, entity.DocumentStatusDraft, doc.Status)
			require.Equal(t, "100", doc.Subtotal.String())
			require.Equal(t, "16", doc.TaxAmount.String())
			require.Equal(t, "116", doc.TotalAmount.String())

			doc.ID = uuid.Must(uuid.NewV4())
			doc.Number = "INV-000001"

			return doc, nil
		})

	audit.EXPECT().CreateAuditRecord(ctx, gomock.Any()).Return(nil)

	s := service.NewDocumentService(repo, audit)

	doc, err := s.Create(ctx, entity.DocTypeInvoice, service.CreateDocumentParams{
		CounterpartyID: cpID,
		IssueDate:      time.Now(),
		DueDate:        time.Now().Add(14 * 24 * time.Hour),
		Lines: []entity.LineItem{
			{
				Description:    "consulting",
				Quantity:       decimal.New(4, 0),
				UnitPrice:      decimal.New(25, 0),
				TaxRatePercent: decimal.New(16, 0),
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "INV-000001", doc.Number)
}

func TestDocumentService_Create_CounterpartyKindMismatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	cpID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Counterparty(ctx, user.TenantID, cpID).
		Return(entity.Counterparty{ID: cpID, Kind: entity.CounterpartyCustomer}, nil)

	s := service.NewDocumentService(repo, audit)

	_, err := s.Create(ctx, entity.DocTypeBill, service.CreateDocumentParams{
		CounterpartyID: cpID,
		IssueDate:      time.Now(),
		DueDate:        time.Now(),
		Lines: []entity.LineItem{
			{Description: "parts", Quantity: decimal.New(1, 0), UnitPrice: decimal.New(10, 0)},
		},
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestDocumentService_Create_NoLines(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	ctx := entity.CtxWithUser(context.Background(), testUser())

	s := service.NewDocumentService(repo, audit)

	_, err := s.Create(ctx, entity.DocTypeInvoice, service.CreateDocumentParams{
		CounterpartyID: uuid.Must(uuid.NewV4()),
		IssueDate:      time.Now(),
		DueDate:        time.Now(),
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestDocumentService_UpdateStatus_PaidRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	ctx := entity.CtxWithUser(context.Background(), testUser())

	s := service.NewDocumentService(repo, audit)

	err := s.UpdateStatus(ctx, uuid.Must(uuid.NewV4()), entity.DocumentStatusPaid)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestDocumentService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	docID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Document(ctx, user.TenantID, docID).
		Return(entity.FinancialDocument{ID: docID, DocType: entity.DocTypeInvoice, Status: entity.DocumentStatusDraft}, nil)
	repo.EXPECT().UpdateDocumentStatus(ctx, user.TenantID, docID, entity.DocumentStatusSent, gomock.Any()).
		Return(nil)
	audit.EXPECT().CreateAuditRecord(ctx, gomock.Any()).Return(nil)

	s := service.NewDocumentService(repo, audit)

	err := s.UpdateStatus(ctx, docID, entity.DocumentStatusSent)
	require.NoError(t, err)
}

func TestDocumentService_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	audit := mocks.NewMockAuditRecorder(ctrl)

	s := service.NewDocumentService(repo, audit)

	_, err := s.Document(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
