package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tenant is the isolation boundary. ExternalID is the identity provider's
// organization id; tenants are auto-created on first sight of it.
type Tenant struct {
	ID         uuid.UUID
	ExternalID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
)

type Employee struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ExternalID string
	Email      string
	Name       string
	Status     EmployeeStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MembershipEvent is an identity-provider webhook payload.
type MembershipEvent struct {
	Type             MembershipEventType
	OrganizationID   string
	OrganizationName string
	MemberID         string
	MemberEmail      string
	MemberName       string
}

type MembershipEventType string

const (
	MembershipMemberAdded   MembershipEventType = "member.added"
	MembershipMemberRemoved MembershipEventType = "member.removed"
)
