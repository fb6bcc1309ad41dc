package auth

import "errors"

var (
	ErrInvalidPhone       = errors.New("phone number must be 10 digits")
	ErrInvalidCode        = errors.New("verification code must be 6 digits")
	ErrRoleNotOTP         = errors.New("role does not sign in with a phone number")
	ErrNoPendingChallenge = errors.New("no pending verification for this phone number")
	ErrResendTooSoon      = errors.New("verification code was sent recently")
	ErrMissingCredentials = errors.New("email and password are required")
)
