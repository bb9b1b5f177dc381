package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/bizflow/settlement/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=membership.go -destination=../mocks/membership.go -package=mocks

type MembershipRepository interface {
	UpsertTenant(ctx context.Context, t entity.Tenant) (entity.Tenant, error)
	UpsertEmployee(ctx context.Context, e entity.Employee) error
	TerminateEmployee(ctx context.Context, tenantID uuid.UUID, externalID string, updatedAt time.Time) error
}

// MembershipService mirrors identity-provider webhook events into local
// tenants and employees. Tenants are created lazily on first mention of
// their organization id.
type MembershipService struct {
	repo MembershipRepository
}

func NewMembershipService(repo MembershipRepository) *MembershipService {
	return &MembershipService{repo: repo}
}

func (s *MembershipService) HandleEvent(ctx context.Context, e entity.MembershipEvent) error {
	if e.OrganizationID == "" {
		return fmt.Errorf("%w: membership event has no organization id", entity.ErrInvalidArgument)
	}

	now := time.Now().UTC()

	tenant, err := s.repo.UpsertTenant(ctx, entity.Tenant{
		ID:         uuid.Must(uuid.NewV4()),
		ExternalID: e.OrganizationID,
		Name:       e.OrganizationName,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("upsert tenant %s: %w", e.OrganizationID, err)
	}

	switch e.Type {
	case entity.MembershipMemberAdded:
		err = s.repo.UpsertEmployee(ctx, entity.Employee{
			ID:         uuid.Must(uuid.NewV4()),
			TenantID:   tenant.ID,
			ExternalID: e.MemberID,
			Email:      e.MemberEmail,
			Name:       e.MemberName,
			Status:     entity.EmployeeStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("upsert employee %s: %w", e.MemberID, err)
		}
	case entity.MembershipMemberRemoved:
		err = s.repo.TerminateEmployee(ctx, tenant.ID, e.MemberID, now)
		if err != nil {
			return fmt.Errorf("terminate employee %s: %w", e.MemberID, err)
		}
	default:
		return fmt.Errorf("%w: unknown membership event type %q", entity.ErrInvalidArgument, e.Type)
	}

	return nil
}
