package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/driversetu/driver-setu/pkg/logger"
)

// Hub maintains active client connections and fans out state updates.
// The newest message of each type is retained and replayed to clients
// when they connect, so a new client never waits for the next change.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan outbound
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *logger.Logger

	latestMu sync.RWMutex
	latest   map[string][]byte
}

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type outbound struct {
	topic string
	data  []byte
}

// NewHub creates a new WebSocket hub
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan outbound, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     log.Named("ws"),
		latest:     make(map[string][]byte),
	}
}

// Run starts the hub's main loop and returns when ctx is done,
// disconnecting every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Client registered", logger.String("client_id", client.ID))
			h.replay(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				h.logger.Info("Client unregistered", logger.String("client_id", client.ID))
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				if client.Wants(msg.topic) {
					client.enqueue(msg.data)
				}
			}
			h.mu.RUnlock()

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				client.close()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register registers a new client. After the hub stops the client is
// disconnected instead.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

// Unregister unregisters a client
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast sends a message to every client interested in its type and
// remembers it for clients that connect later.
func (h *Hub) Broadcast(message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to marshal broadcast message", logger.Err(err))
		return
	}

	h.latestMu.Lock()
	h.latest[message.Type] = data
	h.latestMu.Unlock()

	select {
	case h.broadcast <- outbound{topic: message.Type, data: data}:
	case <-h.done:
	}
}

// Latest returns the retained message of the given type
func (h *Hub) Latest(topic string) ([]byte, bool) {
	h.latestMu.RLock()
	defer h.latestMu.RUnlock()
	data, ok := h.latest[topic]
	return data, ok
}

// replay queues the retained messages on a freshly registered client
func (h *Hub) replay(client *Client) {
	h.latestMu.RLock()
	defer h.latestMu.RUnlock()

	for topic, data := range h.latest {
		if client.Wants(topic) {
			client.enqueue(data)
		}
	}
}

// GetActiveConnections returns the number of active connections
func (h *Hub) GetActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
