package session

import "github.com/driversetu/driver-setu/internal/domain/profile"

// Observer receives session lifecycle events, e.g. for APM
type Observer interface {
	LoggedIn(p *profile.Profile)
	LoggedOut(role profile.Role)
	ProfileUpdated(p *profile.Profile)
	StorageFailure(op string, err error)
}

type nopObserver struct{}

func (nopObserver) LoggedIn(*profile.Profile)       {}
func (nopObserver) LoggedOut(profile.Role)          {}
func (nopObserver) ProfileUpdated(*profile.Profile) {}
func (nopObserver) StorageFailure(string, error)    {}
