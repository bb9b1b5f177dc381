package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=document.go -destination=../mocks/document.go -package=mocks

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc entity.FinancialDocument) (entity.FinancialDocument, error)
	Document(ctx context.Context, tenantID, id uuid.UUID) (entity.FinancialDocument, error)
	Documents(ctx context.Context, tenantID uuid.UUID, docType entity.DocType, f entity.DocumentFilter) ([]entity.FinancialDocument, int, error)
	UpdateDocumentStatus(ctx context.Context, tenantID, id uuid.UUID, status entity.DocumentStatus, updatedAt time.Time) error
	SoftDeleteDocument(ctx context.Context, tenantID, id, deletedBy uuid.UUID, deletedAt time.Time) error
	Counterparty(ctx context.Context, tenantID, id uuid.UUID) (entity.Counterparty, error)
}

// DocumentService creates and manages invoices and bills. Totals are derived
// from line items here and never accepted from the caller.
type DocumentService struct {
	repo  DocumentRepository
	audit AuditRecorder
}

func NewDocumentService(repo DocumentRepository, audit AuditRecorder) *DocumentService {
	return &DocumentService{
		repo:  repo,
		audit: audit,
	}
}

type CreateDocumentParams struct {
	CounterpartyID uuid.UUID
	IssueDate      time.Time
	DueDate        time.Time
	Lines          []entity.LineItem
	Notes          string
}

func (s *DocumentService) Create(
	ctx context.Context,
	docType entity.DocType,
	params CreateDocumentParams,
) (entity.FinancialDocument, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	err = entity.ValidateLines(params.Lines)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	if params.DueDate.Before(params.IssueDate) {
		return entity.FinancialDocument{}, fmt.Errorf("%w: due date is before issue date", entity.ErrInvalidArgument)
	}

	cp, err := s.repo.Counterparty(ctx, user.TenantID, params.CounterpartyID)
	if err != nil {
		return entity.FinancialDocument{}, fmt.Errorf("counterparty %s: %w", params.CounterpartyID, err)
	}

	if cp.Kind != docType.CounterpartyKind() {
		return entity.FinancialDocument{}, fmt.Errorf(
			"%w: %s counterparty cannot be billed with a %s", entity.ErrInvalidArgument, cp.Kind, docType,
		)
	}

	subtotal, tax, total, lines := entity.ComputeTotals(params.Lines)

	for i := range lines {
		lines[i].ID = uuid.Must(uuid.NewV4())
	}

	now := time.Now().UTC()

	doc := entity.FinancialDocument{
		ID:             uuid.Must(uuid.NewV4()),
		TenantID:       user.TenantID,
		DocType:        docType,
		CounterpartyID: params.CounterpartyID,
		IssueDate:      params.IssueDate,
		DueDate:        params.DueDate,
		Lines:          lines,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		TotalAmount:    total,
		Status:         entity.DocumentStatusDraft,
		Notes:          params.Notes,
		CreatedBy:      user.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	doc, err = s.repo.CreateDocument(ctx, doc)
	if err != nil {
		return entity.FinancialDocument{}, fmt.Errorf("create document: %w", err)
	}

	recordAudit(ctx, s.audit, entity.AuditRecord{
		TenantID:   user.TenantID,
		ActorID:    user.ID,
		Action:     entity.AuditActionCreate,
		EntityType: string(docType),
		EntityID:   doc.ID,
		After:      doc,
		CreatedAt:  now,
	})

	return doc, nil
}

func (s *DocumentService) Document(ctx context.Context, id uuid.UUID) (entity.FinancialDocument, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.FinancialDocument{}, err
	}

	return s.repo.Document(ctx, user.TenantID, id)
}

func (s *DocumentService) Documents(
	ctx context.Context,
	docType entity.DocType,
	f entity.DocumentFilter,
) ([]entity.FinancialDocument, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Documents(ctx, user.TenantID, docType, f)
}

// UpdateStatus moves a document through its manual lifecycle (issue, void,
// mark overdue). PAID is owned by the settlement path and rejected here.
func (s *DocumentService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DocumentStatus) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = status.Validate()
	if err != nil {
		return err
	}

	if status == entity.DocumentStatusPaid {
		return fmt.Errorf("%w: PAID is set by applying payments", entity.ErrInvalidArgument)
	}

	before, err := s.repo.Document(ctx, user.TenantID, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	err = s.repo.UpdateDocumentStatus(ctx, user.TenantID, id, status, now)
	if err != nil {
		return err
	}

	after := before
	after.Status = status
	after.UpdatedAt = now

	recordAudit(ctx, s.audit, entity.AuditRecord{
		TenantID:   user.TenantID,
		ActorID:    user.ID,
		Action:     entity.AuditActionUpdate,
		EntityType: string(before.DocType),
		EntityID:   id,
		Before:     before,
		After:      after,
		CreatedAt:  now,
	})

	return nil
}

// Delete soft-deletes a document. PAID documents are refused by the
// repository to keep the settlement trail intact.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	before, err := s.repo.Document(ctx, user.TenantID, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	err = s.repo.SoftDeleteDocument(ctx, user.TenantID, id, user.ID, now)
	if err != nil {
		return err
	}

	recordAudit(ctx, s.audit, entity.AuditRecord{
		TenantID:   user.TenantID,
		ActorID:    user.ID,
		Action:     entity.AuditActionDelete,
		EntityType: string(before.DocType),
		EntityID:   id,
		Before:     before,
		CreatedAt:  now,
	})

	return nil
}
