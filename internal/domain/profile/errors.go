package profile

import "errors"

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidProfileID   = errors.New("invalid profile id")
	ErrInvalidProfileName = errors.New("invalid profile name")
	ErrInvalidStatus      = errors.New("invalid account status")
	ErrInvalidKYCStatus   = errors.New("invalid kyc status")
	ErrSectionMismatch    = errors.New("profile section does not match role")
	ErrFieldRoleMismatch  = errors.New("field is not available for this role")
)
