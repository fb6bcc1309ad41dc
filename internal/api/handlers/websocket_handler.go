package handlers

import (
	"context"
	"strings"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/internal/i18n"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/driversetu/driver-setu/pkg/websocket"
	"github.com/gin-gonic/gin"
)

// Message types pushed to websocket clients
const (
	TopicSession  = "session"
	TopicLanguage = "language"
)

// HandleWebSocket handles GET /v1/ws?topics=session,language
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Error("Failed to upgrade to WebSocket", logger.Err(err))
		return
	}

	var topics []string
	if q := c.Query("topics"); q != "" {
		topics = strings.Split(q, ",")
	}

	client := websocket.NewClient(h.Hub, conn, h.Logger, topics...)
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// StreamUpdates pushes every session snapshot and language switch to the
// hub until ctx is done. The current state is published first.
func (h *Handlers) StreamUpdates(ctx context.Context) {
	h.Localizer.OnChange(func(lang i18n.Language) {
		h.Hub.Broadcast(websocket.Message{Type: TopicLanguage, Data: lang})
	})
	h.Hub.Broadcast(websocket.Message{Type: TopicLanguage, Data: h.Localizer.Language()})

	states, cancel := h.Sessions.Subscribe()
	defer cancel()

	for {
		select {
		case st, ok := <-states:
			if !ok {
				return
			}
			h.Hub.Broadcast(websocket.Message{Type: TopicSession, Data: dto.NewSessionResponse(st)})
		case <-ctx.Done():
			return
		}
	}
}
