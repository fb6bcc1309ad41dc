// Package navigation maps session state to the screen group a client should
// show. Nothing here performs a transition; callers act on the returned route.
package navigation

import (
	"github.com/driversetu/driver-setu/internal/domain/profile"
	"github.com/driversetu/driver-setu/internal/session"
)

// Route is a client screen path
type Route string

const (
	Splash     Route = "/"
	RoleSelect Route = "/role-select"
	Login      Route = "/login"
	OTPVerify  Route = "/otp-verify"
	Language   Route = "/language"

	DriverHome Route = "/(driver-tabs)"
	OwnerHome  Route = "/(owner-tabs)"
	AdminHome  Route = "/(admin-tabs)"
)

var homes = map[profile.Role]Route{
	profile.RoleDriver: DriverHome,
	profile.RoleOwner:  OwnerHome,
	profile.RoleAdmin:  AdminHome,
}

// Home returns the landing group for role, or RoleSelect for an unknown role
func Home(role profile.Role) Route {
	if r, ok := homes[role]; ok {
		return r
	}
	return RoleSelect
}

// AfterLogout is where every role lands once the session is cleared
func AfterLogout() Route {
	return RoleSelect
}

// Entry picks the boot route for a session snapshot
func Entry(st session.State) Route {
	switch {
	case st.Hydrating:
		return Splash
	case st.IsAuthenticated():
		return Home(st.Profile.Role)
	case st.SelectedRole != profile.RoleNone:
		return Login
	default:
		return RoleSelect
	}
}
