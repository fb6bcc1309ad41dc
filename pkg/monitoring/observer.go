package monitoring

import (
	"time"

	"github.com/driversetu/driver-setu/internal/domain/profile"
)

// SessionObserver reports session lifecycle events to New Relic
type SessionObserver struct {
	nr *NewRelicApp
}

// NewSessionObserver creates an observer; a disabled app records nothing
func NewSessionObserver(nr *NewRelicApp) *SessionObserver {
	return &SessionObserver{nr: nr}
}

// LoggedIn records a SessionLogin event
func (o *SessionObserver) LoggedIn(p *profile.Profile) {
	o.nr.RecordCustomEvent("SessionLogin", map[string]interface{}{
		"user_id":   p.ID,
		"role":      string(p.Role),
		"timestamp": time.Now().Unix(),
	})
}

// LoggedOut records a SessionLogout event
func (o *SessionObserver) LoggedOut(role profile.Role) {
	o.nr.RecordCustomEvent("SessionLogout", map[string]interface{}{
		"role":      string(role),
		"timestamp": time.Now().Unix(),
	})
}

// ProfileUpdated records a ProfileUpdated event
func (o *SessionObserver) ProfileUpdated(p *profile.Profile) {
	o.nr.RecordCustomEvent("ProfileUpdated", map[string]interface{}{
		"user_id": p.ID,
		"role":    string(p.Role),
	})
}

// StorageFailure counts persistence failures that outlived their retries
func (o *SessionObserver) StorageFailure(op string, err error) {
	o.nr.RecordCustomMetric("custom/session/storage_failures", 1)
	o.nr.RecordCustomEvent("SessionStorageFailure", map[string]interface{}{
		"op":    op,
		"error": err.Error(),
	})
}
