package irbridge

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Client is one connected dashboard websocket connection.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan Envelope
	hub  *Hub
}

// Hub fans decoded-command envelopes out to connected dashboard clients,
// the same register/unregister/broadcast channel trio as the teacher's
// internal/websocket.Hub, narrowed to one message shape (Envelope) instead
// of the flow editor's typed Message variants.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Envelope
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub constructs a hub. Call Run in its own goroutine before accepting
// connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()

		case env := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- env:
				default:
					// client's send buffer is full, drop this update
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast fans out a decoded-command envelope to every connected client.
func (h *Hub) Broadcast(env Envelope) {
	select {
	case h.broadcast <- env:
	default:
		// hub is backed up; drop rather than block the decode path
	}
}

// ClientCount reports the number of currently connected dashboard clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades and services one dashboard websocket connection.
// Intended to be passed to gofiber/websocket/v2's websocket.New.
func (h *Hub) HandleWebSocket(c *websocket.Conn) {
	client := &Client{
		ID:   fmt.Sprintf("client-%d", time.Now().UnixNano()),
		conn: c,
		send: make(chan Envelope, 256),
		hub:  h,
	}

	h.register <- client

	go client.writePump()
	client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
