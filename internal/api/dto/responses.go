package dto

import (
	"github.com/driversetu/driver-setu/internal/i18n"
	"github.com/driversetu/driver-setu/internal/navigation"
	"github.com/driversetu/driver-setu/internal/session"
)

// SessionResponse is the session snapshot plus the route the client should
// be showing for it.
type SessionResponse struct {
	Session session.State    `json:"session"`
	Route   navigation.Route `json:"route"`
}

// NewSessionResponse builds the response for a snapshot
func NewSessionResponse(st session.State) SessionResponse {
	return SessionResponse{Session: st, Route: navigation.Entry(st)}
}

// LanguagesResponse lists the language picker entries
type LanguagesResponse struct {
	Languages []i18n.Info   `json:"languages"`
	Active    i18n.Language `json:"active"`
	Suggested i18n.Language `json:"suggested"`
}

// MessagesResponse is a full translation table
type MessagesResponse struct {
	Language i18n.Language     `json:"language"`
	Messages map[string]string `json:"messages"`
}

// MessageResponse is a single lookup
type MessageResponse struct {
	Language i18n.Language `json:"language"`
	Key      string        `json:"key"`
	Text     string        `json:"text"`
}
