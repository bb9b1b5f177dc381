package entity

import (
	"github.com/gofrs/uuid/v5"
)

// User is the caller identity resolved by the auth service. TenantID scopes
// every read and write the caller performs.
type User struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
}

const (
	RoleOwner      = "owner"
	RoleAccountant = "accountant"
	RoleEmployee   = "employee"
)
