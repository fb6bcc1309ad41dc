package auth

import "github.com/driversetu/driver-setu/internal/domain/profile"

// demoProfile builds the account a verified phone number signs into
func demoProfile(role profile.Role, phone string) *profile.Profile {
	if role == profile.RoleDriver {
		return &profile.Profile{
			ID:         newID(role),
			Name:       "Rajesh Kumar",
			Phone:      phone,
			Role:       role,
			Status:     profile.StatusActive,
			IsVerified: profile.Bool(false),
			Driver: &profile.DriverDetails{
				KYCStatus:      profile.KYCPending,
				Rating:         4.7,
				TrustScore:     85,
				Experience:     5,
				CompletionRate: 94,
				TotalTrips:     1247,
				WalletBalance:  12500,
			},
		}
	}
	return &profile.Profile{
		ID:         newID(role),
		Name:       "Suresh Patil",
		Phone:      phone,
		Role:       role,
		Status:     profile.StatusActive,
		IsVerified: profile.Bool(true),
		Owner:      &profile.OwnerDetails{},
	}
}
