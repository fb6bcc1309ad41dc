package profile

import "fmt"

// Role identifies which side of the marketplace a user acts on
type Role string

const (
	RoleNone   Role = ""
	RoleDriver Role = "driver"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// Roles lists every concrete role in display order
var Roles = []Role{RoleDriver, RoleOwner, RoleAdmin}

// IsValid validates the role. RoleNone is not a valid role.
func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// UsesOTP reports whether the role authenticates with a phone OTP.
// Admins sign in with email and password instead.
func (r Role) UsesOTP() bool {
	return r == RoleDriver || r == RoleOwner
}

// ParseRole converts a stored or submitted value into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return RoleNone, fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// AccountStatus represents moderation state of an account
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusBlocked   AccountStatus = "blocked"
)

// IsValid validates the status
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusBlocked:
		return true
	}
	return false
}

// KYCStatus is the know-your-customer verification state
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// IsValid validates the kyc status
func (k KYCStatus) IsValid() bool {
	switch k {
	case KYCPending, KYCApproved, KYCRejected:
		return true
	}
	return false
}
