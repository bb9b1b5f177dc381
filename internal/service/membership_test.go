package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/mocks"
	"github.com/bizflow/settlement/internal/service"
)

func TestMembershipService_MemberAdded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMembershipRepository(ctrl)

	ctx := context.Background()
	tenantID := uuid.Must(uuid.NewV4())

	repo.EXPECT().UpsertTenant(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tn entity.Tenant) (entity.Tenant, error) {
			require.Equal(t, "org_123", tn.ExternalID)
			tn.ID = tenantID
			return tn, nil
		})
	repo.EXPECT().UpsertEmployee(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e entity.Employee) error {
			require.Equal(t, tenantID, e.TenantID)
			require.Equal(t, "mem_456", e.ExternalID)
			require.Equal(t, entity.EmployeeStatusActive, e.Status)
			return nil
		})

	s := service.NewMembershipService(repo)

	err := s.HandleEvent(ctx, entity.MembershipEvent{
		Type:           entity.MembershipMemberAdded,
		OrganizationID: "org_123",
		MemberID:       "mem_456",
		MemberEmail:    "new@example.com",
	})
	require.NoError(t, err)
}

func TestMembershipService_MemberRemoved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMembershipRepository(ctrl)

	ctx := context.Background()
	tenantID := uuid.Must(uuid.NewV4())

	repo.EXPECT().UpsertTenant(ctx, gomock.Any()).
		Return(entity.Tenant{ID: tenantID, ExternalID: "org_123"}, nil)
	repo.EXPECT().TerminateEmployee(ctx, tenantID, "mem_456", gomock.Any()).Return(nil)

	s := service.NewMembershipService(repo)

	err := s.HandleEvent(ctx, entity.MembershipEvent{
		Type:           entity.MembershipMemberRemoved,
		OrganizationID: "org_123",
		MemberID:       "mem_456",
	})
	require.NoError(t, err)
}

func TestMembershipService_UnknownEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMembershipRepository(ctrl)

	ctx := context.Background()

	repo.EXPECT().UpsertTenant(ctx, gomock.Any()).
		Return(entity.Tenant{ID: uuid.Must(uuid.NewV4())}, nil)

	s := service.NewMembershipService(repo)

	err := s.HandleEvent(ctx, entity.MembershipEvent{
		Type:           "member.renamed",
		OrganizationID: "org_123",
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestMembershipService_NoOrganization(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMembershipRepository(ctrl)

	s := service.NewMembershipService(repo)

	err := s.HandleEvent(context.Background(), entity.MembershipEvent{Type: entity.MembershipMemberAdded})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
