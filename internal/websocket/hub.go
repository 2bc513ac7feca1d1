package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/planvoice/planvoice/usecase"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Text frames only.
	maxMessageSize = 16 * 1024
)

// Hub maintains the set of active assistant sessions. Sessions are
// independent; the hub only tracks registration so shutdown and logging can
// see what is connected.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	assistant *usecase.AssistantService
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewHub creates a new WebSocket hub. Origin checking mirrors the HTTP CORS
// configuration: "*" allows any origin.
func NewHub(assistant *usecase.AssistantService, allowedOrigin string, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		assistant:  assistant,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		logger: logger,
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.sessionID] = client
			h.mu.Unlock()
			h.logger.Info("Session registered", zap.String("sessionID", client.sessionID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.sessionID]; ok {
				delete(h.clients, client.sessionID)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Session unregistered", zap.String("sessionID", client.sessionID))
		}
	}
}

// Client is a middleman between a websocket connection and the assistant.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound frames.
	send chan []byte

	// Session ID for this connection, assigned at upgrade time.
	sessionID string

	logger *zap.Logger
}

// HandleWebSocket upgrades the request and starts the session pumps.
func HandleWebSocket(hub *Hub, c echo.Context) error {
	conn, err := hub.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		hub.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return err
	}

	client := &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 16),
		sessionID: uuid.NewString(),
		logger:    hub.logger,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// readPump pumps frames from the websocket connection into the assistant.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}

		if messageType != websocket.TextMessage {
			c.logger.Warn("Ignoring non-text frame", zap.Int("type", messageType))
			continue
		}

		c.processMessage(message)
	}
}

// processMessage handles one inbound ask frame. Frame content is never
// logged; only the session ID and outcome metadata are.
func (c *Client) processMessage(data []byte) {
	ask, err := ParseAskMessage(data)
	if err != nil {
		c.logger.Warn("Rejected malformed frame", zap.String("sessionID", c.sessionID))
		c.enqueue(NewErrorMessage("invalid_request").Encode())
		return
	}

	envelope := c.hub.assistant.Reply(context.Background(), ask.Message, ask.Context)
	c.enqueue(NewReplyMessage(envelope).Encode())
}

func (c *Client) enqueue(frame []byte) {
	select {
	case c.send <- frame:
	default:
		c.logger.Warn("Dropping frame for slow session", zap.String("sessionID", c.sessionID))
	}
}

// writePump pumps frames from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Error("Failed to write frame", zap.Error(err))
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
