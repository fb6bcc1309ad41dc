package catalog

import (
	"fmt"
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/pkg/logger"
)

// User is an account in the admin user list
type User struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Role      profile.Role          `json:"role"`
	Status    profile.AccountStatus `json:"status"`
	Phone     string                `json:"phone"`
	KYCStatus profile.KYCStatus     `json:"kyc_status"`
	Rating    float64               `json:"rating,omitempty"`
	JoinedAt  time.Time             `json:"joined_at"`
}

// UserFilter narrows the admin user list
type UserFilter string

const (
	FilterAll        UserFilter = "all"
	FilterDrivers    UserFilter = "driver"
	FilterOwners     UserFilter = "owner"
	FilterPendingKYC UserFilter = "pending_kyc"
)

// ParseUserFilter treats "" as FilterAll
func ParseUserFilter(s string) (UserFilter, error) {
	switch f := UserFilter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterDrivers, FilterOwners, FilterPendingKYC:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUserFilter, s)
}

func (f UserFilter) match(u *User) bool {
	switch f {
	case FilterDrivers:
		return u.Role == profile.RoleDriver
	case FilterOwners:
		return u.Role == profile.RoleOwner
	case FilterPendingKYC:
		return u.KYCStatus == profile.KYCPending
	}
	return true
}

// Action is an admin moderation action
type Action string

const (
	ActionApproveKYC Action = "approve_kyc"
	ActionRejectKYC  Action = "reject_kyc"
	ActionSuspend    Action = "suspend"
	ActionBlock      Action = "block"
	ActionActivate   Action = "activate"
)

// ParseAction validates a moderation action name
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionApproveKYC, ActionRejectKYC, ActionSuspend, ActionBlock, ActionActivate:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// apply enforces which actions the user list offers for a given account:
// KYC decisions only while pending, suspend for active drivers, block for
// active owners, activate for anyone not active.
func (a Action) apply(u *User) error {
	switch a {
	case ActionApproveKYC, ActionRejectKYC:
		if u.KYCStatus != profile.KYCPending {
			return ErrActionNotAllowed
		}
		u.KYCStatus = profile.KYCApproved
		if a == ActionRejectKYC {
			u.KYCStatus = profile.KYCRejected
		}
	case ActionSuspend:
		if u.Role != profile.RoleDriver || u.Status != profile.StatusActive {
			return ErrActionNotAllowed
		}
		u.Status = profile.StatusSuspended
	case ActionBlock:
		if u.Role != profile.RoleOwner || u.Status != profile.StatusActive {
			return ErrActionNotAllowed
		}
		u.Status = profile.StatusBlocked
	case ActionActivate:
		if u.Status == profile.StatusActive {
			return ErrActionNotAllowed
		}
		u.Status = profile.StatusActive
	default:
		return ErrInvalidAction
	}
	return nil
}

// Users lists accounts matching filter
func (c *Catalog) Users(filter UserFilter) []User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]User, 0, len(c.users))
	for _, u := range c.users {
		if filter.match(u) {
			out = append(out, *u)
		}
	}
	return out
}

// Moderate applies action to the user with id and returns the updated record
func (c *Catalog) Moderate(id string, action Action) (*User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, u := range c.users {
		if u.ID != id {
			continue
		}
		next := *u
		if err := action.apply(&next); err != nil {
			return nil, fmt.Errorf("%s %s: %w", action, id, err)
		}
		*u = next

		c.logger.Info("User moderated",
			logger.String("user_id", id),
			logger.String("action", string(action)),
			logger.String("status", string(next.Status)),
			logger.String("kyc_status", string(next.KYCStatus)),
		)
		return &next, nil
	}
	return nil, ErrUserNotFound
}

func seedUsers() []*User {
	joined := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
	return []*User{
		{ID: "1", Name: "Rajesh Kumar", Role: profile.RoleDriver, Status: profile.StatusActive, Phone: "9876543210", KYCStatus: profile.KYCApproved, Rating: 4.8, JoinedAt: joined(2025, time.January)},
		{ID: "2", Name: "Sunil Yadav", Role: profile.RoleDriver, Status: profile.StatusActive, Phone: "9876543211", KYCStatus: profile.KYCPending, Rating: 4.6, JoinedAt: joined(2025, time.March)},
		{ID: "3", Name: "Suresh Patil", Role: profile.RoleOwner, Status: profile.StatusActive, Phone: "9876543212", KYCStatus: profile.KYCApproved, JoinedAt: joined(2025, time.February)},
		{ID: "4", Name: "Vikram Singh", Role: profile.RoleDriver, Status: profile.StatusSuspended, Phone: "9876543213", KYCStatus: profile.KYCApproved, Rating: 4.2, JoinedAt: joined(2024, time.December)},
		{ID: "5", Name: "Amit Shah", Role: profile.RoleOwner, Status: profile.StatusActive, Phone: "9876543214", KYCStatus: profile.KYCApproved, JoinedAt: joined(2025, time.April)},
		{ID: "6", Name: "Ravi Patil", Role: profile.RoleDriver, Status: profile.StatusBlocked, Phone: "9876543215", KYCStatus: profile.KYCRejected, Rating: 3.1, JoinedAt: joined(2024, time.November)},
		{ID: "7", Name: "Deepak Pawar", Role: profile.RoleDriver, Status: profile.StatusActive, Phone: "9876543216", KYCStatus: profile.KYCApproved, Rating: 4.7, JoinedAt: joined(2025, time.May)},
	}
}
