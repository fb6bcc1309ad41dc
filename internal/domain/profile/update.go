package profile

import "fmt"

// Update is a partial set of field overrides. Nil fields are left alone.
// ID and Role are deliberately absent: both are fixed for a session.
type Update struct {
	Name         *string        `json:"name,omitempty"`
	Phone        *string        `json:"phone,omitempty"`
	Email        *string        `json:"email,omitempty"`
	Status       *AccountStatus `json:"status,omitempty"`
	ProfileImage *string        `json:"profile_image,omitempty"`
	IsVerified   *bool          `json:"is_verified,omitempty"`

	// Driver or owner
	Rating        *float64 `json:"rating,omitempty"`
	WalletBalance *float64 `json:"wallet_balance,omitempty"`

	// Driver only
	IsOnline        *bool      `json:"is_online,omitempty"`
	KYCStatus       *KYCStatus `json:"kyc_status,omitempty"`
	TrustScore      *int       `json:"trust_score,omitempty"`
	Experience      *int       `json:"experience,omitempty"`
	CompletionRate  *float64   `json:"completion_rate,omitempty"`
	TotalTrips      *int       `json:"total_trips,omitempty"`
	LicenseUploaded *bool      `json:"license_uploaded,omitempty"`
	AadhaarUploaded *bool      `json:"aadhaar_uploaded,omitempty"`
}

// Apply merges u into a copy of p. p itself is never modified.
func (u Update) Apply(p *Profile) (*Profile, error) {
	out := p.Clone()

	setString(&out.Name, u.Name)
	setString(&out.Phone, u.Phone)
	setString(&out.Email, u.Email)
	setString(&out.ProfileImage, u.ProfileImage)
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.IsVerified != nil {
		out.IsVerified = Bool(*u.IsVerified)
	}

	if u.hasDriverFields() {
		if out.Role != RoleDriver {
			return nil, fmt.Errorf("%w: %s", ErrFieldRoleMismatch, out.Role)
		}
		if out.Driver == nil {
			out.Driver = &DriverDetails{}
		}
		d := out.Driver
		if u.IsOnline != nil {
			d.IsOnline = *u.IsOnline
		}
		if u.KYCStatus != nil {
			d.KYCStatus = *u.KYCStatus
		}
		if u.TrustScore != nil {
			d.TrustScore = *u.TrustScore
		}
		if u.Experience != nil {
			d.Experience = *u.Experience
		}
		if u.CompletionRate != nil {
			d.CompletionRate = *u.CompletionRate
		}
		if u.TotalTrips != nil {
			d.TotalTrips = *u.TotalTrips
		}
		if u.LicenseUploaded != nil {
			d.LicenseUploaded = *u.LicenseUploaded
		}
		if u.AadhaarUploaded != nil {
			d.AadhaarUploaded = *u.AadhaarUploaded
		}
	}

	if u.Rating != nil || u.WalletBalance != nil {
		switch out.Role {
		case RoleDriver:
			if out.Driver == nil {
				out.Driver = &DriverDetails{}
			}
			setFloat(&out.Driver.Rating, u.Rating)
			setFloat(&out.Driver.WalletBalance, u.WalletBalance)
		case RoleOwner:
			if out.Owner == nil {
				out.Owner = &OwnerDetails{}
			}
			setFloat(&out.Owner.Rating, u.Rating)
			setFloat(&out.Owner.WalletBalance, u.WalletBalance)
		default:
			return nil, fmt.Errorf("%w: %s", ErrFieldRoleMismatch, out.Role)
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// IsEmpty reports whether the update overrides nothing
func (u Update) IsEmpty() bool {
	return u == Update{}
}

func (u Update) hasDriverFields() bool {
	return u.IsOnline != nil || u.KYCStatus != nil || u.TrustScore != nil ||
		u.Experience != nil || u.CompletionRate != nil || u.TotalTrips != nil ||
		u.LicenseUploaded != nil || u.AadhaarUploaded != nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
