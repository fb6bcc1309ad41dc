package navigation

import (
	"testing"

	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	tests := []struct {
		role profile.Role
		want Route
	}{
		{profile.RoleDriver, "/(driver-tabs)"},
		{profile.RoleOwner, "/(owner-tabs)"},
		{profile.RoleAdmin, "/(admin-tabs)"},
		{profile.RoleNone, "/role-select"},
		{profile.Role("pilot"), "/role-select"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, Home(tt.role))
		})
	}
}

func TestAfterLogout(t *testing.T) {
	assert.Equal(t, Route("/role-select"), AfterLogout())
}

func TestEntry(t *testing.T) {
	owner := &profile.Profile{ID: "owner_1", Name: "Suresh", Role: profile.RoleOwner}

	tests := []struct {
		name  string
		state session.State
		want  Route
	}{
		{"hydrating", session.State{Hydrating: true, Profile: owner}, Splash},
		{"authenticated", session.State{Profile: owner, SelectedRole: profile.RoleOwner}, OwnerHome},
		{"profile role wins over stale selection", session.State{Profile: owner, SelectedRole: profile.RoleDriver}, OwnerHome},
		{"role picked", session.State{SelectedRole: profile.RoleDriver}, Login},
		{"fresh install", session.State{}, RoleSelect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entry(tt.state))
		})
	}
}
