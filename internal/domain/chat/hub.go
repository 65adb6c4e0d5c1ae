package chat

import (
	"sync"
	"time"

	"barabom/internal/platform/logger"
)

// Wire message types pushed to connected clients.
const (
	WireChatMessage = "chat_message"
	WireBadge       = "badge"
	WirePush        = "push"
)

// WireMessage is the envelope written to websocket clients.
type WireMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
	Time int64  `json:"time"`
}

// Hub keeps the set of connected websocket clients and fans messages out to
// all of them. It doubles as the notification feed's badge refresher and
// push channel, standing in for the browser's notification surface.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan WireMessage

	log logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan WireMessage, 16),
		log:        log,
	}
}

// Run is the hub's main loop; start it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.log.Debug("chat: client connected", map[string]any{"clients": h.clientCount()})

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.log.Debug("chat: client disconnected", map[string]any{"clients": h.clientCount()})

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer; drop it rather than block the hub.
					go func(c *Client) { h.unregister <- c }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastMessage implements the chat service's Broadcaster.
func (h *Hub) BroadcastMessage(m Message) {
	h.broadcast <- WireMessage{Type: WireChatMessage, Data: m, Time: time.Now().Unix()}
}

// RefreshBadge implements the notification feed's BadgeRefresher.
func (h *Hub) RefreshBadge(count int) {
	h.broadcast <- WireMessage{Type: WireBadge, Data: map[string]int{"count": count}, Time: time.Now().Unix()}
}

// Push implements the notification feed's Pusher; connected clients are the
// stand-in for platform push delivery.
func (h *Hub) Push(title, body, tag string) {
	h.broadcast <- WireMessage{
		Type: WirePush,
		Data: map[string]string{"title": title, "body": body, "tag": tag},
		Time: time.Now().Unix(),
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
