package session

import (
	"encoding/json"

	"github.com/driversetu/driver-setu/internal/domain/profile"
)

// Storage keys owned by the container. Nothing else may write them.
const (
	ProfileKey = "@driver_setu_auth"
	RoleKey    = "@driver_setu_role"
)

// State is a point-in-time snapshot of the session
type State struct {
	Profile      *profile.Profile
	SelectedRole profile.Role
	Hydrating    bool
}

// IsAuthenticated reports whether a profile is current
func (s State) IsAuthenticated() bool {
	return s.Profile != nil
}

// Role returns the logged-in role, or RoleNone
func (s State) Role() profile.Role {
	if s.Profile == nil {
		return profile.RoleNone
	}
	return s.Profile.Role
}

func (s State) clone() State {
	s.Profile = s.Profile.Clone()
	return s
}

// MarshalJSON includes the derived authentication flag
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Profile         *profile.Profile `json:"profile"`
		SelectedRole    profile.Role     `json:"selected_role,omitempty"`
		IsHydrating     bool             `json:"is_hydrating"`
		IsAuthenticated bool             `json:"is_authenticated"`
	}{
		Profile:         s.Profile,
		SelectedRole:    s.SelectedRole,
		IsHydrating:     s.Hydrating,
		IsAuthenticated: s.IsAuthenticated(),
	})
}
