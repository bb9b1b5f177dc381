// Package service implements the document, settlement and checkout engines
// on top of the repository. All coordination goes through the transactional
// store; services hold no mutable state.
package service

import (
	"context"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

// AuditRecorder persists before/after snapshots of mutations. Best-effort:
// failures are logged and never fail the primary operation.
type AuditRecorder interface {
	CreateAuditRecord(ctx context.Context, rec entity.AuditRecord) error
}

// Producer publishes notification events. Implementations swallow delivery
// failures.
type Producer interface {
	SendOrderConfirmation(ctx context.Context, e broker.OrderConfirmationEvent)
	SendDocumentSettled(ctx context.Context, e broker.DocumentSettledEvent)
}

func recordAudit(ctx context.Context, audit AuditRecorder, rec entity.AuditRecord) {
	rec.ID = uuid.Must(uuid.NewV4())

	err := audit.CreateAuditRecord(ctx, rec)
	if err != nil {
		slog.ErrorContext(ctx, "write audit record", "error", err, "action", rec.Action, "entity", rec.EntityType)
	}
}
