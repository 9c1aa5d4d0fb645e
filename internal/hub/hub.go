// Package hub fans roster changes out to websocket dashboard clients.
package hub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/omarshaarawi/squadbot/internal/models"
)

const broadcastBufferSize = 64

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan models.ServerMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// snapshot produces the payload for the welcome message a client gets
	// when it connects. Nil disables the welcome.
	snapshot func() interface{}

	totalConnections int64
	totalMessages    int64
	metricsMu        sync.Mutex
}

func NewHub(snapshot func() interface{}) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan models.ServerMessage, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		snapshot:   snapshot,
	}
}

// Run is the hub's main loop. It returns when ctx is cancelled, closing every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	slog.Info("Hub started")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register and Unregister are no-ops once Run has returned.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues msg for every client. It never blocks; when the queue is
// full the message is dropped.
func (h *Hub) Broadcast(msg models.ServerMessage) {
	select {
	case h.broadcast <- msg:
	default:
		slog.Warn("Broadcast buffer full, dropping message", "type", msg.Type)
	}
}

// RosterListener returns a roster subscriber that pushes a fresh dashboard to
// every client on each change.
func (h *Hub) RosterListener(dashboard func() models.Dashboard) func(models.RosterEvent) {
	return func(event models.RosterEvent) {
		h.Broadcast(models.ServerMessage{
			Type:      models.MessageTypeDashboard,
			Event:     &event,
			Payload:   dashboard(),
			Timestamp: time.Now(),
		})
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()

	slog.Info("Client connected", "client_id", c.ID, "total", total)

	if h.snapshot != nil {
		c.TrySend(models.ServerMessage{
			Type:      models.MessageTypeWelcome,
			Payload:   h.snapshot(),
			Timestamp: time.Now(),
		})
	}
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		slog.Info("Client disconnected", "client_id", c.ID, "total", len(h.clients))
	}
}

func (h *Hub) broadcastMessage(msg models.ServerMessage) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	sent, dropped := 0, 0
	for _, c := range clients {
		if c.TrySend(msg) {
			sent++
			continue
		}
		// Too slow to keep up; disconnect.
		dropped++
		slog.Warn("Client buffer full, disconnecting", "client_id", c.ID)
		go h.Unregister(c)
	}

	if sent > 0 {
		h.metricsMu.Lock()
		h.totalMessages++
		h.metricsMu.Unlock()
	}
	if dropped > 0 {
		slog.Warn("Dropped messages for slow clients", "dropped", dropped)
	}
}

func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Metrics() map[string]interface{} {
	h.metricsMu.Lock()
	totalConnections := h.totalConnections
	totalMessages := h.totalMessages
	h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":    h.ClientCount(),
		"total_connections": totalConnections,
		"total_messages":    totalMessages,
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	slog.Info("Shutting down hub", "active_clients", len(h.clients))
	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
