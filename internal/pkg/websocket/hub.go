package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusplacement/portal/internal/app/models"
)

// Hub maintains the set of connected clients and pushes each newly posted
// announcement to all of them. The feed is broadcast-only; client input is
// discarded.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	logger zerolog.Logger
}

// AnnouncementEvent is the wire format pushed to subscribers.
type AnnouncementEvent struct {
	Type         string               `json:"type" example:"announcement"`
	Announcement *models.Announcement `json:"announcement"`
	Timestamp    time.Time            `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug().Int("clients", h.ClientCount()).Msg("Websocket client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug().Int("clients", h.ClientCount()).Msg("Websocket client disconnected")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishAnnouncement pushes an announcement to all connected clients.
func (h *Hub) PublishAnnouncement(a *models.Announcement) {
	event := AnnouncementEvent{
		Type:         "announcement",
		Announcement: a,
		Timestamp:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal announcement event")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn().Msg("Announcement broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
