package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payment.go -destination=../mocks/payment.go -package=mocks

type PaymentRepository interface {
	ApplyPayment(ctx context.Context, p entity.Payment) (entity.Payment, entity.FinancialDocument, error)
	ReversePayment(ctx context.Context, tenantID, paymentID, deletedBy uuid.UUID, deletedAt time.Time) (entity.Payment, entity.FinancialDocument, error)
	Payment(ctx context.Context, tenantID, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, tenantID uuid.UUID, f entity.PaymentFilter) ([]entity.Payment, int, error)
}

// PaymentService applies and reverses payments against documents. Settlement
// runs in a single repository transaction so the paid amount, status and
// payment row always move together.
type PaymentService struct {
	repo     PaymentRepository
	audit    AuditRecorder
	producer Producer
}

func NewPaymentService(repo PaymentRepository, audit AuditRecorder, producer Producer) *PaymentService {
	return &PaymentService{
		repo:     repo,
		audit:    audit,
		producer: producer,
	}
}

type ApplyPaymentParams struct {
	Date      time.Time
	Amount    decimal.Decimal
	Method    entity.PaymentMethod
	InvoiceID uuid.UUID
	BillID    uuid.UUID
	Notes     string
}

func (s *PaymentService) Apply(ctx context.Context, params ApplyPaymentParams) (entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	now := time.Now().UTC()

	date := params.Date
	if date.IsZero() {
		date = now
	}

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		TenantID:  user.TenantID,
		Date:      date,
		Amount:    params.Amount,
		Method:    params.Method,
		InvoiceID: params.InvoiceID,
		BillID:    params.BillID,
		Notes:     params.Notes,
		CreatedBy: user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = p.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	p, doc, err := s.repo.ApplyPayment(ctx, p)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("apply payment: %w", err)
	}

	recordAudit(ctx, s.audit, entity.AuditRecord{
		TenantID:   user.TenantID,
		ActorID:    user.ID,
		Action:     entity.AuditActionCreate,
		EntityType: string(entity.DocTypePayment),
		EntityID:   p.ID,
		After:      p,
		CreatedAt:  now,
	})

	if doc.Status == entity.DocumentStatusPaid {
		s.producer.SendDocumentSettled(ctx, broker.DocumentSettledEvent{
			TenantID:   doc.TenantID.String(),
			DocumentID: doc.ID.String(),
			Number:     doc.Number,
			PaidAmount: doc.PaidAmount.StringFixed(2),
			Status:     doc.Status.String(),
		})
	}

	return p, nil
}

// Reverse soft-deletes a payment and rolls its amount back off the referenced
// document. The document returns to its open status even when the remaining
// paid amount is zero.
func (s *PaymentService) Reverse(ctx context.Context, paymentID uuid.UUID) (entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	now := time.Now().UTC()

	p, _, err := s.repo.ReversePayment(ctx, user.TenantID, paymentID, user.ID, now)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("reverse payment: %w", err)
	}

	recordAudit(ctx, s.audit, entity.AuditRecord{
		TenantID:   user.TenantID,
		ActorID:    user.ID,
		Action:     entity.AuditActionDelete,
		EntityType: string(entity.DocTypePayment),
		EntityID:   p.ID,
		Before:     p,
		CreatedAt:  now,
	})

	return p, nil
}

func (s *PaymentService) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	return s.repo.Payment(ctx, user.TenantID, id)
}

func (s *PaymentService) Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Payments(ctx, user.TenantID, f)
}
