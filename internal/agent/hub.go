// internal/agent/hub.go
// WebSocket hub for live chat with generated replies

package agent

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tundeajayi/sparkmatch-backend/internal/auth"
	"github.com/tundeajayi/sparkmatch-backend/internal/common/utils"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, implement proper CORS checking
		return true
	},
}

// WSChatRequest is an incoming chat frame.
type WSChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
	FlirtingStyle  string `json:"flirting_style"`
}

// WSChatEvent is an outgoing reply frame.
type WSChatEvent struct {
	Type      string        `json:"type"`
	Payload   *ChatResponse `json:"payload,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Hub maintains active websocket connections
type Hub struct {
	clients    map[string]*wsClient
	clientsMux sync.RWMutex

	register   chan *wsClient
	unregister chan *wsClient

	service Service

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(service Service) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[string]*wsClient),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		service:    service,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMux.Lock()
			// Replace any old connection for the same user
			if old, ok := h.clients[client.userID]; ok {
				old.close()
			}
			h.clients[client.userID] = client
			h.clientsMux.Unlock()

		case client := <-h.unregister:
			h.clientsMux.Lock()
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
			}
			h.clientsMux.Unlock()
			client.close()

		case <-h.ctx.Done():
			h.clientsMux.Lock()
			for _, client := range h.clients {
				client.close()
			}
			h.clients = make(map[string]*wsClient)
			h.clientsMux.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()
}

// HandleWebSocket upgrades the connection and starts the client pumps.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &wsClient{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 64),
		userID: userID,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

type wsClient struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string

	// mu guards closed and every send on the channel, so close never
	// races a concurrent sendEvent.
	mu     sync.Mutex
	closed bool
}

func (c *wsClient) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	c.conn.Close()
}

func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error for %s: %v", c.userID, err)
			}
			return
		}

		var req WSChatRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			c.sendEvent(WSChatEvent{Type: "error", Error: "invalid chat frame", Timestamp: time.Now()})
			continue
		}

		resp, err := c.hub.service.Chat(c.hub.ctx, &ChatDTO{
			ConversationID: req.ConversationID,
			UserID:         c.userID,
			Message:        req.Message,
			FlirtingStyle:  req.FlirtingStyle,
		})
		if err != nil {
			c.sendEvent(WSChatEvent{Type: "error", Error: err.Error(), Timestamp: time.Now()})
			continue
		}
		c.sendEvent(WSChatEvent{Type: "reply", Payload: resp, Timestamp: time.Now()})
	}
}

func (c *wsClient) sendEvent(event WSChatEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal ws event: %v", err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		// Slow consumer; drop the frame rather than block the reader.
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
