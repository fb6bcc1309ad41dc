package profile

// Profile is the authenticated identity record. The common header is shared
// by every role; role-specific attributes live in the section matching Role.
type Profile struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Role         Role          `json:"role"`
	Status       AccountStatus `json:"status,omitempty"`
	ProfileImage string        `json:"profile_image,omitempty"`
	IsVerified   *bool         `json:"is_verified,omitempty"`

	Driver *DriverDetails `json:"driver,omitempty"`
	Owner  *OwnerDetails  `json:"owner,omitempty"`
	Admin  *AdminDetails  `json:"admin,omitempty"`
}

// DriverDetails holds attributes only drivers carry
type DriverDetails struct {
	IsOnline        bool      `json:"is_online"`
	KYCStatus       KYCStatus `json:"kyc_status,omitempty"`
	Rating          float64   `json:"rating"`
	TrustScore      int       `json:"trust_score"`
	Experience      int       `json:"experience"`
	CompletionRate  float64   `json:"completion_rate"`
	TotalTrips      int       `json:"total_trips"`
	WalletBalance   float64   `json:"wallet_balance"`
	LicenseUploaded bool      `json:"license_uploaded"`
	AadhaarUploaded bool      `json:"aadhaar_uploaded"`
}

// OwnerDetails holds attributes only vehicle owners carry
type OwnerDetails struct {
	Rating        float64 `json:"rating,omitempty"`
	WalletBalance float64 `json:"wallet_balance,omitempty"`
}

// AdminDetails is empty today; it keeps the variant shape uniform.
type AdminDetails struct{}

// Validate checks the header and that no section belongs to another role.
// A missing section for the profile's own role is allowed.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return ErrInvalidProfileID
	}
	if p.Name == "" {
		return ErrInvalidProfileName
	}
	if !p.Role.IsValid() {
		return ErrInvalidRole
	}
	if p.Status != "" && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	if (p.Driver != nil && p.Role != RoleDriver) ||
		(p.Owner != nil && p.Role != RoleOwner) ||
		(p.Admin != nil && p.Role != RoleAdmin) {
		return ErrSectionMismatch
	}
	if p.Driver != nil && p.Driver.KYCStatus != "" && !p.Driver.KYCStatus.IsValid() {
		return ErrInvalidKYCStatus
	}
	return nil
}

// Clone returns a copy that shares no pointers with p
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.IsVerified != nil {
		v := *p.IsVerified
		c.IsVerified = &v
	}
	if p.Driver != nil {
		d := *p.Driver
		c.Driver = &d
	}
	if p.Owner != nil {
		o := *p.Owner
		c.Owner = &o
	}
	if p.Admin != nil {
		c.Admin = &AdminDetails{}
	}
	return &c
}

// Verified reports the verification flag, treating absence as false
func (p *Profile) Verified() bool {
	return p.IsVerified != nil && *p.IsVerified
}

// Bool returns a pointer to b, for optional profile fields
func Bool(b bool) *bool {
	return &b
}
