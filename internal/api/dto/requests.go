package dto

import "github.com/driversetu/driver-setu/internal/domain/profile"

// SelectRoleRequest records the role picked on the role selection screen.
// An empty role clears the selection.
type SelectRoleRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=driver owner admin"`
}

// UpdateProfileRequest carries partial profile overrides. Absent fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Status          *string  `json:"status" binding:"omitempty,oneof=active suspended blocked"`
	ProfileImage    *string  `json:"profile_image"`
	IsVerified      *bool    `json:"is_verified"`
	Rating          *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	WalletBalance   *float64 `json:"wallet_balance" binding:"omitempty,gte=0"`
	IsOnline        *bool    `json:"is_online"`
	KYCStatus       *string  `json:"kyc_status" binding:"omitempty,oneof=pending approved rejected"`
	TrustScore      *int     `json:"trust_score" binding:"omitempty,gte=0,lte=100"`
	Experience      *int     `json:"experience" binding:"omitempty,gte=0"`
	CompletionRate  *float64 `json:"completion_rate" binding:"omitempty,gte=0,lte=100"`
	TotalTrips      *int     `json:"total_trips" binding:"omitempty,gte=0"`
	LicenseUploaded *bool    `json:"license_uploaded"`
	AadhaarUploaded *bool    `json:"aadhaar_uploaded"`
}

// ToUpdate converts the request into profile overrides
func (r UpdateProfileRequest) ToUpdate() profile.Update {
	u := profile.Update{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		ProfileImage:    r.ProfileImage,
		IsVerified:      r.IsVerified,
		Rating:          r.Rating,
		WalletBalance:   r.WalletBalance,
		IsOnline:        r.IsOnline,
		TrustScore:      r.TrustScore,
		Experience:      r.Experience,
		CompletionRate:  r.CompletionRate,
		TotalTrips:      r.TotalTrips,
		LicenseUploaded: r.LicenseUploaded,
		AadhaarUploaded: r.AadhaarUploaded,
	}
	if r.Status != nil {
		s := profile.AccountStatus(*r.Status)
		u.Status = &s
	}
	if r.KYCStatus != nil {
		k := profile.KYCStatus(*r.KYCStatus)
		u.KYCStatus = &k
	}
	return u
}

// RequestOTPRequest starts phone verification
type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=driver owner"`
}

// VerifyOTPRequest completes phone verification
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// AdminLoginRequest signs an administrator in
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SetLanguageRequest switches the display language
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// PostJobRequest is the post-a-job form
type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	Duration    string `json:"duration"`
}

// WithdrawRequest asks for a bank transfer from the driver wallet
type WithdrawRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
